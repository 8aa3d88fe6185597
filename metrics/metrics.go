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

// Package metrics exposes dvrouted's runtime counters to Prometheus. It
// implements dv.MetricsSink so the routing engine never imports this
// package directly; wiring happens once in cmd/dvrouted.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a dv.MetricsSink backed by Prometheus collectors.
type Metrics struct {
	routeCount     prometheus.Gauge
	aliveNeighbors prometheus.Gauge
	broadcasts     prometheus.Counter
	unicastReplies prometheus.Counter
	delivered      prometheus.Counter
	forwarded      prometheus.Counter
	droppedNoRoute prometheus.Counter
	droppedProto   prometheus.Counter
	tableFull      prometheus.Counter

	registry *prometheus.Registry
	srv      *http.Server
}

// New registers every dvrouted collector under its own registry, labeled
// by the node's own label so a single Prometheus instance can scrape
// several nodes without collision.
func New(selfLabel string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	constLabels := prometheus.Labels{"node": selfLabel}

	return &Metrics{
		registry: reg,
		routeCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "dvrouted",
			Name:        "route_count",
			Help:        "Number of destinations currently in the routing table.",
			ConstLabels: constLabels,
		}),
		aliveNeighbors: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "dvrouted",
			Name:        "alive_neighbors",
			Help:        "Number of declared neighbors currently considered alive.",
			ConstLabels: constLabels,
		}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "broadcasts_total",
			Help:        "Distance-vector broadcasts sent.",
			ConstLabels: constLabels,
		}),
		unicastReplies: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "unicast_replies_total",
			Help:        "Unicast distance-vector replies sent.",
			ConstLabels: constLabels,
		}),
		delivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "data_delivered_total",
			Help:        "DATA packets delivered to this node.",
			ConstLabels: constLabels,
		}),
		forwarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "data_forwarded_total",
			Help:        "DATA packets forwarded to a next hop.",
			ConstLabels: constLabels,
		}),
		droppedNoRoute: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "data_dropped_no_route_total",
			Help:        "DATA packets dropped for lack of a route.",
			ConstLabels: constLabels,
		}),
		droppedProto: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "protocol_dropped_total",
			Help:        "Routing-plane packets dropped as malformed or untrusted.",
			ConstLabels: constLabels,
		}),
		tableFull: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "dvrouted",
			Name:        "table_full_total",
			Help:        "Candidate routes discarded because the table was at capacity.",
			ConstLabels: constLabels,
		}),
	}
}

func (m *Metrics) SetRouteCount(n int)     { m.routeCount.Set(float64(n)) }
func (m *Metrics) SetAliveNeighbors(n int) { m.aliveNeighbors.Set(float64(n)) }
func (m *Metrics) IncBroadcast()           { m.broadcasts.Inc() }
func (m *Metrics) IncUnicastReply()        { m.unicastReplies.Inc() }
func (m *Metrics) IncDelivered()           { m.delivered.Inc() }
func (m *Metrics) IncForwarded()           { m.forwarded.Inc() }
func (m *Metrics) IncDroppedNoRoute()      { m.droppedNoRoute.Inc() }
func (m *Metrics) IncDroppedProtocol()     { m.droppedProto.Inc() }
func (m *Metrics) IncTableFull()           { m.tableFull.Inc() }

// Serve starts the Prometheus HTTP endpoint on addr. It runs until ctx is
// canceled, at which point it shuts down with a short grace period. Callers
// only invoke this when the metrics address is configured; there is no
// listener otherwise, so the single-threaded receive loop in the dispatcher
// is never sharing a goroutine budget it didn't ask for.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.srv = &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return m.srv.Shutdown(shutdownCtx)
	}
}
