/*
 * dvrouted - a distance-vector routing daemon.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

// Neighbor lifecycle: the initial broadcast on startup, the triggered
// broadcast whenever the engine reports a change, unicast replies to a
// contributing-nothing INITIAL_DV, and the best-effort death notice.
package dv

import "strconv"

func (n *Node) ownEntries() []Entry {
	snapshot := n.table.Iter()
	out := make([]Entry, len(snapshot))
	copy(out, snapshot)
	return out
}

// broadcastDV sends the current own DV, framed as t, to every neighbor.
// Send failures are logged and otherwise ignored, per the non-fatal
// transport-error policy.
func (n *Node) broadcastDV(t PacketType) {
	buf, err := EncodeDV(t, n.ownEntries())
	if err != nil {
		// Can only happen if the table somehow exceeded capacity, which the
		// table's own invariant prevents.
		panic(err)
	}

	sent := 0
	for _, nb := range n.registry.Iter() {
		if err := n.tr.SendTo(buf, nb.Port); err != nil {
			n.log.Dropped("send-failed", nb.Port)
			continue
		}
		sent++
	}

	n.log.Broadcast(t.String(), sent)
	if t == PacketDV {
		n.metrics.IncBroadcast()
	}
}

// unicastDV sends the current own DV to a single neighbor, used when an
// INITIAL_DV contributed nothing new but the sender still needs our table.
func (n *Node) unicastDV(port uint16) {
	buf, err := EncodeDV(PacketDV, n.ownEntries())
	if err != nil {
		panic(err)
	}
	if err := n.tr.SendTo(buf, port); err != nil {
		n.log.Dropped("send-failed", port)
		return
	}
	n.metrics.IncUnicastReply()
}

// AnnounceInitial broadcasts this node's starting DV (which may be empty)
// to every neighbor, once, at startup.
func (n *Node) AnnounceInitial() {
	neighbors := KVNeighbors(n.registry)
	n.log.Startup(string(n.SelfLabel), n.SelfPort, neighbors)
	n.broadcastDV(PacketInitialDV)
}

// AnnounceDeath sends a best-effort KILLED packet to every neighbor. It is
// never retried.
func (n *Node) AnnounceDeath() {
	msg := EncodeKilled()
	for _, nb := range n.registry.Iter() {
		if err := n.tr.SendTo(msg, nb.Port); err != nil {
			n.log.Dropped("send-failed", nb.Port)
		}
	}
}

// KVNeighbors renders the neighbor set as a loggable map for the startup
// banner.
func KVNeighbors(r *NeighborRegistry) map[string]any {
	out := make(map[string]any, len(r.Iter()))
	for _, nb := range r.Iter() {
		out[strconv.Itoa(int(nb.Port))] = nb.Cost
	}
	return out
}
