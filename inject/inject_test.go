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

package inject

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dvrouted/dv"
	"dvrouted/topology"
)

func writeTopology(t *testing.T, contents string) *topology.Topology {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "topo.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	topo, err := topology.Load(path)
	require.NoError(t, err)
	return topo
}

func TestSendDeliversDataPacket(t *testing.T) {
	addr, err := net.ResolveUDPAddr("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	conn, err := net.ListenUDP("udp4", addr)
	require.NoError(t, err)
	defer conn.Close()

	srcPort := uint16(conn.LocalAddr().(*net.UDPAddr).Port)
	contents := "X,A," + strconv.Itoa(int(srcPort)) + ",1\nX,B,40999,1\n"
	topo := writeTopology(t, contents)

	require.NoError(t, Send(topo, 20000, 'A', 'B', []byte("hello")))

	buf := make([]byte, 256)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)

	pkt, err := dv.Decode(buf[:n])
	require.NoError(t, err)
	require.Equal(t, dv.PacketData, pkt.Type)
	require.Equal(t, byte('A'), pkt.Data.SrcLabel)
	require.Equal(t, byte('B'), pkt.Data.DstLabel)
	require.Equal(t, uint16(40999), pkt.Data.DstPort)
	require.Equal(t, "hello", string(pkt.Data.Payload))
}

func TestSendRejectsReservedPort(t *testing.T) {
	topo := writeTopology(t, "A,B,40000,1\nB,A,40001,1\n")
	err := Send(topo, 10002, 'A', 'B', []byte("x"))
	require.Error(t, err)
}

func TestSendRejectsOversizePayload(t *testing.T) {
	topo := writeTopology(t, "A,B,40000,1\nB,A,40001,1\n")
	payload := make([]byte, dv.MaxPayload+1)
	err := Send(topo, 20000, 'A', 'B', payload)
	require.Error(t, err)
}
