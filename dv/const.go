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

const (
	// MaxCost is the unreachability threshold. Any path cost >= MaxCost is
	// poisoned and withdrawn.
	MaxCost = 64

	// DVCapacity is the maximum number of destinations any node tracks.
	DVCapacity = 16

	// MaxPayload is the largest DATA payload a packet may carry.
	MaxPayload = 80

	// entrySize is the on-wire size of one DV entry: dest(2) + hop(2) + cost(4).
	entrySize = 8

	// maxDatagram is the largest datagram the transport will accept.
	maxDatagram = 65536
)

// PacketType discriminates the four wire message kinds by their first byte.
type PacketType uint8

const (
	PacketData      PacketType = 1
	PacketDV        PacketType = 2
	PacketKilled    PacketType = 3
	PacketInitialDV PacketType = 4
)

func (t PacketType) String() string {
	switch t {
	case PacketData:
		return "DATA"
	case PacketDV:
		return "DV"
	case PacketKilled:
		return "KILLED"
	case PacketInitialDV:
		return "INITIAL_DV"
	default:
		return "UNKNOWN"
	}
}
