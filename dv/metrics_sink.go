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

// MetricsSink receives counters the dispatcher and lifecycle code already
// compute as a side effect of handling each datagram. A nil sink is
// replaced by noopMetrics so call sites never need a nil check.
type MetricsSink interface {
	SetRouteCount(n int)
	SetAliveNeighbors(n int)
	IncBroadcast()
	IncUnicastReply()
	IncDelivered()
	IncForwarded()
	IncDroppedNoRoute()
	IncDroppedProtocol()
	IncTableFull()
}

type noopMetrics struct{}

func (noopMetrics) SetRouteCount(int)     {}
func (noopMetrics) SetAliveNeighbors(int) {}
func (noopMetrics) IncBroadcast()         {}
func (noopMetrics) IncUnicastReply()      {}
func (noopMetrics) IncDelivered()         {}
func (noopMetrics) IncForwarded()         {}
func (noopMetrics) IncDroppedNoRoute()    {}
func (noopMetrics) IncDroppedProtocol()   {}
func (noopMetrics) IncTableFull()         {}
