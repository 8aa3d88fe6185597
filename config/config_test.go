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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "topology.txt", cfg.TopologyPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.MirrorStdout)
	require.Empty(t, cfg.MetricsAddr)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dvrouted.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topology: custom.txt\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "custom.txt", cfg.TopologyPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dvrouted.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	t.Setenv("DVROUTED_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestOverrideAppliesCLIFlags(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	mirror := false
	cfg = cfg.Override("flag-topology.txt", "", "", ":9090", &mirror)
	require.Equal(t, "flag-topology.txt", cfg.TopologyPath)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.False(t, cfg.MirrorStdout)
}
