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

// The packet dispatcher: one datagram in, fully handled (including any
// triggered broadcast) before the next is accepted.
package dv

// Run is the single-threaded dispatch loop. It returns once the socket
// closes or stop fires; on stop it sends the best-effort death notice
// before returning, matching the "set a flag, broadcast from the main
// loop" guidance instead of sending from a signal handler directly.
func (n *Node) Run(stop <-chan struct{}) {
	datagrams := n.tr.Datagrams()
	for {
		select {
		case d, ok := <-datagrams:
			if !ok {
				return
			}
			n.handle(d)

		case <-stop:
			n.mu.Lock()
			n.AnnounceDeath()
			n.mu.Unlock()
			return
		}
	}
}

func (n *Node) handle(d datagram) {
	n.mu.Lock()
	defer n.mu.Unlock()

	pkt, err := Decode(d.data)
	if err != nil {
		n.log.Dropped(err.Error(), d.fromPort)
		n.metrics.IncDroppedProtocol()
		return
	}

	switch pkt.Type {
	case PacketData:
		n.forwardData(d.data, pkt.Data, d.fromPort)

	case PacketDV:
		if !n.requireNeighbor(d.fromPort) {
			return
		}
		if n.engine.ProcessNeighborDV(d.fromPort, pkt.Entries) > 0 {
			n.broadcastDV(PacketDV)
		}
		n.syncGauges()

	case PacketInitialDV:
		if !n.requireNeighbor(d.fromPort) {
			return
		}
		if n.engine.ProcessNeighborDV(d.fromPort, pkt.Entries) > 0 {
			n.broadcastDV(PacketDV)
		} else {
			n.unicastDV(d.fromPort)
		}
		n.syncGauges()

	case PacketKilled:
		if !n.requireNeighbor(d.fromPort) {
			return
		}
		n.engine.NeighborDied(d.fromPort)
		n.syncGauges()
		n.broadcastDV(PacketDV)
	}
}

// requireNeighbor enforces the firm invariant that all routing-plane
// updates must originate from a direct neighbor.
func (n *Node) requireNeighbor(port uint16) bool {
	if n.registry.IsNeighbor(port) {
		return true
	}
	n.log.Dropped("not-a-neighbor", port)
	n.metrics.IncDroppedProtocol()
	return false
}

func (n *Node) syncGauges() {
	n.metrics.SetRouteCount(n.table.Len())
	n.metrics.SetAliveNeighbors(n.registry.AliveCount())
}
