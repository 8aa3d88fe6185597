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

package topology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTopology(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "topo.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadLinearChain(t *testing.T) {
	path := writeTopology(t, "A,B,10002,1\nB,A,10001,1\nB,C,10003,1\nC,B,10002,1\n")
	topo, err := Load(path)
	require.NoError(t, err)

	label, err := topo.SelfLabel(10002)
	require.NoError(t, err)
	require.Equal(t, byte('B'), label)

	neighbors := topo.Neighbors('B')
	require.Equal(t, map[uint16]uint32{10001: 1, 10003: 1}, neighbors)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writeTopology(t, "A,B,10002\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsOverlongLine(t *testing.T) {
	path := writeTopology(t, "A,B,10002,1111111111111111111111111111111111111111111111111111111111111111111111111111\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeTopology(t, "\n\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLabelPort(t *testing.T) {
	path := writeTopology(t, "A,B,10002,1\nB,A,10001,1\n")
	topo, err := Load(path)
	require.NoError(t, err)

	port, err := topo.LabelPort('A')
	require.NoError(t, err)
	require.Equal(t, uint16(10001), port)
}
