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

package dv

// forwardData implements the Forwarder: deliver locally if this node is
// the destination, otherwise look up the next hop and re-emit the same
// bytes unmodified. There is no TTL; loop avoidance is entirely the
// engine's responsibility.
func (n *Node) forwardData(raw []byte, d DataPacket, prevHop uint16) {
	if d.DstPort == n.SelfPort {
		n.log.Delivered(d.SrcLabel, d.DstLabel, string(d.Payload))
		n.metrics.IncDelivered()
		return
	}

	route, ok := n.table.Find(d.DstPort)
	if !ok {
		n.log.Dropped("no-route", d.DstPort)
		n.metrics.IncDroppedNoRoute()
		return
	}

	if err := n.tr.SendTo(raw, route.FirstHop); err != nil {
		n.log.Dropped("send-failed", route.FirstHop)
		return
	}

	n.log.Forwarded(d.SrcLabel, d.DstLabel, n.SelfPort, prevHop, route.FirstHop)
	n.metrics.IncForwarded()
}
