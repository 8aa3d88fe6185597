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

// Package config layers dvrouted's runtime settings: compiled-in
// defaults, an optional YAML file, environment variables prefixed
// DVROUTED_, and finally CLI flags parsed by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DVROUTED_"

// Config holds every setting a routing node or the injector needs beyond
// what is passed as positional CLI arguments.
type Config struct {
	TopologyPath string `koanf:"topology"`
	LogDir       string `koanf:"log_dir"`
	LogLevel     string `koanf:"log_level"`
	MirrorStdout bool   `koanf:"mirror_stdout"`
	MetricsAddr  string `koanf:"metrics_addr"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"topology":      "topology.txt",
		"log_dir":       ".",
		"log_level":     "info",
		"mirror_stdout": true,
		"metrics_addr":  "",
	}
}

// Load builds a Config from defaults, an optional YAML file at
// yamlPath (skipped silently if it does not exist), and environment
// variables. CLI flags, which take highest precedence, are applied by
// the caller via Override after Load returns.
func Load(yamlPath string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if yamlPath != "" {
		if _, err := os.Stat(yamlPath); err == nil {
			if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", yamlPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	// DVROUTED_LOG_DIR -> log_dir
	out := make([]byte, 0, len(s)-len(envPrefix))
	for i := len(envPrefix); i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		out = append(out, c)
	}
	return string(out)
}

// Override applies any non-zero-value CLI overrides on top of cfg.
func (c Config) Override(topology, logDir, logLevel, metricsAddr string, mirrorStdout *bool) Config {
	if topology != "" {
		c.TopologyPath = topology
	}
	if logDir != "" {
		c.LogDir = logDir
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if metricsAddr != "" {
		c.MetricsAddr = metricsAddr
	}
	if mirrorStdout != nil {
		c.MirrorStdout = *mirrorStdout
	}
	return c
}
