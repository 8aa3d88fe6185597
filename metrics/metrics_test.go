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

package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, g interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestCountersIncrement(t *testing.T) {
	m := New("A")

	m.SetRouteCount(3)
	m.SetAliveNeighbors(2)
	m.IncBroadcast()
	m.IncBroadcast()
	m.IncDelivered()
	m.IncDroppedNoRoute()
	m.IncTableFull()

	require.Equal(t, float64(3), gaugeValue(t, m.routeCount))
	require.Equal(t, float64(2), gaugeValue(t, m.aliveNeighbors))

	var broadcastMetric dto.Metric
	require.NoError(t, m.broadcasts.Write(&broadcastMetric))
	require.Equal(t, float64(2), broadcastMetric.GetCounter().GetValue())

	var tableFullMetric dto.Metric
	require.NoError(t, m.tableFull.Write(&tableFullMetric))
	require.Equal(t, float64(1), tableFullMetric.GetCounter().GetValue())
}
