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

// The Bellman-Ford update engine. ProcessNeighborDV is invoked both for
// genuine DV announcements and, with an empty slice, to re-minimize
// every route that depended on a neighbor just declared dead.
package dv

import "dvrouted/dvlog"

// Engine applies the Bellman-Ford procedure against a node's own routing
// table, using the neighbor registry as its view of link costs and cached
// peer distance vectors.
type Engine struct {
	selfPort  uint16
	neighbors *NeighborRegistry
	table     *RoutingTable
	log       dvlog.Log
	metrics   MetricsSink
}

// NewEngine builds an engine bound to the given self-port, neighbor
// registry and routing table. log may be nil, in which case events are
// discarded; metrics may be nil, in which case counters are discarded.
func NewEngine(selfPort uint16, neighbors *NeighborRegistry, table *RoutingTable, log dvlog.Log, metrics MetricsSink) *Engine {
	if log == nil {
		log = dvlog.Nil{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Engine{selfPort: selfPort, neighbors: neighbors, table: table, log: log, metrics: metrics}
}

// ProcessNeighborDV runs the full Bellman-Ford step for one neighbor
// announcement (or, with received == nil, a synthetic empty one) and
// returns the number of own-DV entries that changed.
func (e *Engine) ProcessNeighborDV(sender uint16, received []Entry) int {
	n, ok := e.neighbors.Lookup(sender)
	if !ok {
		// Defensive: callers are expected to have checked IsNeighbor first.
		panic("dv: ProcessNeighborDV called for a non-neighbor port")
	}

	// Step 1: overwrite the sender's cached DV.
	n.LastDV = received

	changes := 0

	// Step 2: reconsider every entry routed through the sender.
	for _, cur := range e.table.Iter() {
		if cur.FirstHop != sender || cur.Dest == sender {
			continue
		}

		costThruSender, reachable := n.costTo(cur.Dest)
		var newCost uint32 = MaxCost
		if reachable {
			newCost = n.Cost + costThruSender
		}

		if newCost <= cur.Cost {
			// unchanged or would only improve, which step 3 handles below
			continue
		}

		// The previously relied-upon path got worse or vanished: re-minimize
		// from scratch across every alive neighbor's cached DV.
		bestCost := uint32(MaxCost)
		var bestHop uint16
		found := false

		for _, other := range e.neighbors.Iter() {
			if !other.Alive {
				continue
			}

			var total uint32
			if cur.Dest == other.Port {
				// A neighbor never advertises a route to itself (self is
				// implicit), so the candidate path here is just the direct
				// link to it.
				total = other.Cost
			} else {
				c, ok := other.costTo(cur.Dest)
				if !ok {
					continue
				}
				total = other.Cost + c
			}

			if total < bestCost {
				bestCost = total
				bestHop = other.Port
				found = true
			}
		}

		if found && bestCost < MaxCost {
			e.table.InsertOrReplace(Entry{Dest: cur.Dest, FirstHop: bestHop, Cost: bestCost})
			e.log.RouteChanged(cur.Dest, bestHop, bestCost)
		} else {
			e.table.Remove(cur.Dest)
			e.log.RouteWithdrawn(cur.Dest)
		}
		changes++
	}

	// Step 3: relax every destination the sender advertises.
	for _, re := range received {
		if e.relax(re.Dest, sender, n.Cost+re.Cost) {
			changes++
		}
	}

	// Step 4: relax the sender itself, handling re-admission after death or
	// first contact.
	if e.relax(sender, sender, n.Cost) {
		changes++
	}

	return changes
}

// relax is the Bellman-Ford primitive: it only ever lowers a cost, or
// withdraws a route that has been poisoned. Increases are the exclusive
// responsibility of step 2's global re-minimization.
func (e *Engine) relax(dest, via uint16, costVia uint32) bool {
	if dest == e.selfPort {
		return false
	}

	cur, exists := e.table.Find(dest)

	if !exists {
		if costVia >= MaxCost {
			return false
		}
		if !e.table.InsertOrReplace(Entry{Dest: dest, FirstHop: via, Cost: costVia}) {
			e.log.TableFull(dest)
			e.metrics.IncTableFull()
			return false
		}
		e.log.RouteChanged(dest, via, costVia)
		return true
	}

	if costVia >= MaxCost {
		e.table.Remove(dest)
		e.log.RouteWithdrawn(dest)
		return true
	}

	if costVia < cur.Cost {
		e.table.InsertOrReplace(Entry{Dest: dest, FirstHop: via, Cost: costVia})
		e.log.RouteChanged(dest, via, costVia)
		return true
	}

	return false
}

// NeighborDied runs the full death procedure for sender: marks it dead,
// drops the direct route through it, and re-processes an empty DV from it
// so step 2 sweeps every entry that depended on it.
func (e *Engine) NeighborDied(sender uint16) int {
	e.neighbors.MarkDead(sender)

	if cur, ok := e.table.Find(sender); ok && cur.FirstHop == sender {
		e.table.Remove(sender)
	}

	changes := e.ProcessNeighborDV(sender, nil)

	// Defensive: the sender must never survive death processing.
	if cur, ok := e.table.Find(sender); ok && cur.FirstHop == sender {
		e.table.Remove(sender)
		changes++
	}

	e.log.NeighborDead(sender)
	return changes
}
