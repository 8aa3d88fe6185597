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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableInsertFindRemove(t *testing.T) {
	table := NewRoutingTable()

	ok := table.InsertOrReplace(Entry{Dest: 10001, FirstHop: 10002, Cost: 3})
	require.True(t, ok)

	e, found := table.Find(10001)
	require.True(t, found)
	assert.Equal(t, uint32(3), e.Cost)

	table.Remove(10001)
	_, found = table.Find(10001)
	assert.False(t, found)
}

func TestTableRejectsNewEntryAtCapacity(t *testing.T) {
	table := NewRoutingTable()
	for i := 0; i < DVCapacity; i++ {
		require.True(t, table.InsertOrReplace(Entry{Dest: uint16(20000 + i), FirstHop: 10001, Cost: 1}))
	}
	assert.Equal(t, DVCapacity, table.Len())

	assert.False(t, table.InsertOrReplace(Entry{Dest: 30000, FirstHop: 10001, Cost: 1}))
	assert.Equal(t, DVCapacity, table.Len())
}

func TestTableAllowsReplaceAtCapacity(t *testing.T) {
	table := NewRoutingTable()
	for i := 0; i < DVCapacity; i++ {
		require.True(t, table.InsertOrReplace(Entry{Dest: uint16(20000 + i), FirstHop: 10001, Cost: 1}))
	}

	ok := table.InsertOrReplace(Entry{Dest: 20000, FirstHop: 10001, Cost: 9})
	assert.True(t, ok)
	e, _ := table.Find(20000)
	assert.Equal(t, uint32(9), e.Cost)
}
