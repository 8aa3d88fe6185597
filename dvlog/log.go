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

// Package dvlog is the narrow logging seam the routing engine depends on.
// Concrete sinks (SlogLog, Nil) live alongside this interface so callers
// never need to know which one is wired in.
package dvlog

// KV is a bag of structured fields attached to a single log event.
type KV = map[string]any

// Log is the event vocabulary the routing engine and its external
// collaborators emit. Implementations must be safe for concurrent use.
type Log interface {
	Startup(selfLabel string, selfPort uint16, neighbors KV)
	Broadcast(packetType string, neighborCount int)
	RouteChanged(dest, hop uint16, cost uint32)
	RouteWithdrawn(dest uint16)
	TableFull(dest uint16)
	NeighborDead(port uint16)
	Dropped(reason string, from uint16)
	Delivered(srcLabel, dstLabel byte, payload string)
	Forwarded(srcLabel, dstLabel byte, arrivalPort, prevHop, nextHop uint16)
}

// Nil discards every event. Useful in tests and as a zero value.
type Nil struct{}

func (Nil) Startup(string, uint16, KV)                   {}
func (Nil) Broadcast(string, int)                        {}
func (Nil) RouteChanged(uint16, uint16, uint32)          {}
func (Nil) RouteWithdrawn(uint16)                        {}
func (Nil) TableFull(uint16)                             {}
func (Nil) NeighborDead(uint16)                          {}
func (Nil) Dropped(string, uint16)                       {}
func (Nil) Delivered(byte, byte, string)                 {}
func (Nil) Forwarded(byte, byte, uint16, uint16, uint16) {}
