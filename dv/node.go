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

// Node is the explicit, constructed-at-bootstrap context threaded through
// the dispatcher and engine in place of the original implementation's
// process-wide globals (self port, own DV, neighbor list head, socket,
// log handle).
package dv

import (
	"sync"

	"dvrouted/dvlog"
)

// Node is a single router's complete runtime state.
type Node struct {
	SelfLabel byte
	SelfPort  uint16

	registry *NeighborRegistry
	table    *RoutingTable
	engine   *Engine
	tr       *Transport
	log      dvlog.Log
	metrics  MetricsSink

	// mu guards registry and table against concurrent reads through
	// RouteCount, AliveNeighbors and Snapshot; the dispatch loop is itself
	// single-threaded and only takes this lock to stay consistent with
	// those readers.
	mu sync.Mutex
}

// NewNode constructs a node from its bootstrapped identity and link set.
// The transport is bound separately via Listen so tests can exercise the
// engine without a socket.
func NewNode(selfLabel byte, selfPort uint16, links map[uint16]uint32, log dvlog.Log, metrics MetricsSink) *Node {
	if log == nil {
		log = dvlog.Nil{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	registry := NewNeighborRegistry(links)
	table := NewRoutingTable()
	engine := NewEngine(selfPort, registry, table, log, metrics)

	return &Node{
		SelfLabel: selfLabel,
		SelfPort:  selfPort,
		registry:  registry,
		table:     table,
		engine:    engine,
		log:       log,
		metrics:   metrics,
	}
}

// Listen binds the node's UDP socket.
func (n *Node) Listen() error {
	tr, err := NewTransport(n.SelfPort)
	if err != nil {
		return err
	}
	n.tr = tr
	return nil
}

// Close releases the socket.
func (n *Node) Close() error {
	if n.tr == nil {
		return nil
	}
	return n.tr.Close()
}

// RouteCount reports how many destinations are currently tracked.
func (n *Node) RouteCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.table.Len()
}

// AliveNeighbors reports how many declared neighbors are currently alive.
func (n *Node) AliveNeighbors() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry.AliveCount()
}

// Snapshot returns a copy of the current own DV, safe to read concurrently
// with the dispatch loop.
func (n *Node) Snapshot() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.table.Iter()
}
