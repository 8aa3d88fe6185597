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

// Package inject implements the one-shot traffic injector: it never binds
// a listening socket of its own, only fires a single DATA packet at the
// first hop into the network and exits.
package inject

import (
	"fmt"
	"net"

	"dvrouted/dv"
	"dvrouted/topology"
)

// ReservedPortLow and ReservedPortHigh bound the port range reserved for
// in-network routers. The injector's own CLI port must fall outside it.
const (
	ReservedPortLow  = 10000
	ReservedPortHigh = 10005
)

// Send resolves srcLabel and dstLabel against topo, validates ownPort (the
// injector's own CLI port) and the payload, and fires a single DATA packet
// at srcLabel's port.
func Send(topo *topology.Topology, ownPort uint16, srcLabel, dstLabel byte, payload []byte) error {
	if ownPort >= ReservedPortLow && ownPort <= ReservedPortHigh {
		return fmt.Errorf("inject: port %d is reserved for in-network routers [%d, %d]", ownPort, ReservedPortLow, ReservedPortHigh)
	}
	if len(payload) > dv.MaxPayload {
		return fmt.Errorf("inject: payload exceeds %d bytes", dv.MaxPayload)
	}

	srcPort, err := topo.LabelPort(srcLabel)
	if err != nil {
		return fmt.Errorf("inject: source label %q: %w", string(srcLabel), err)
	}

	dstPort, err := topo.LabelPort(dstLabel)
	if err != nil {
		return fmt.Errorf("inject: destination label %q: %w", string(dstLabel), err)
	}

	buf, err := dv.EncodeData(dv.DataPacket{
		SrcLabel: srcLabel,
		DstLabel: dstLabel,
		DstPort:  dstPort,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("inject: encode: %w", err)
	}

	addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("127.0.0.1:%d", srcPort))
	if err != nil {
		return fmt.Errorf("inject: resolve: %w", err)
	}
	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return fmt.Errorf("inject: dial: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(buf); err != nil {
		return fmt.Errorf("inject: send: %w", err)
	}
	return nil
}
