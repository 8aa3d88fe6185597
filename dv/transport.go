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

// Transport owns the single UDP socket. A dedicated goroutine does nothing
// but block on ReadFromUDP and hand raw datagrams to the dispatch loop over
// a channel - it never touches routing state, so every state mutation in
// the engine, table and registry still happens on a single goroutine, which
// is what section 5's sequencing invariant actually requires.
package dv

import (
	"fmt"
	"net"
)

// datagram is one raw inbound packet paired with the peer port it arrived
// from - a neighbor's or an injector's port, per section 6's "sender and
// receiver ports are peer identities".
type datagram struct {
	data     []byte
	fromPort uint16
}

// Transport binds one loopback UDP socket and multiplexes reads onto a
// channel for the single-threaded dispatch loop to consume.
type Transport struct {
	conn    *net.UDPConn
	in      chan datagram
	readErr chan error
}

// NewTransport binds 127.0.0.1:port.
func NewTransport(port uint16) (*Transport, error) {
	addr := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: int(port)}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("dv: bind %d: %w", port, err)
	}

	t := &Transport{
		conn:    conn,
		in:      make(chan datagram, 32),
		readErr: make(chan error, 1),
	}

	go t.readLoop()

	return t, nil
}

func (t *Transport) readLoop() {
	defer close(t.in)

	buf := make([]byte, maxDatagram)
	for {
		n, addr, err := t.conn.ReadFromUDP(buf)
		if err != nil {
			t.readErr <- err
			return
		}

		data := make([]byte, n)
		copy(data, buf[:n])

		t.in <- datagram{data: data, fromPort: uint16(addr.Port)}
	}
}

// Datagrams exposes the inbound stream. It closes when the socket is
// closed or encounters a read error.
func (t *Transport) Datagrams() <-chan datagram {
	return t.in
}

// SendTo is a fire-and-forget unicast; transport errors are the caller's
// responsibility to log, never fatal (section 7).
func (t *Transport) SendTo(b []byte, port uint16) error {
	addr := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: int(port)}
	_, err := t.conn.WriteToUDP(b, addr)
	return err
}

// Close releases the socket, unblocking the reader goroutine.
func (t *Transport) Close() error {
	return t.conn.Close()
}
