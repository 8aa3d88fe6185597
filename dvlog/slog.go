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

package dvlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how SlogLog writes.
type Config struct {
	// Dir is the directory routing-output_<label>.txt is written into.
	Dir string
	// Label is this node's single-character identity, used in the file name.
	Label string
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// MirrorStdout additionally writes every event to stdout, matching the
	// original router's habit of printing each DV snapshot twice.
	MirrorStdout bool
}

// SlogLog renders every Log event as a structured line through log/slog,
// tagged with a per-run correlation id so that repeated runs against the
// same label can be told apart in retained logs.
type SlogLog struct {
	logger *slog.Logger
	runID  string
}

// NewSlogLog opens (or creates) routing-output_<label>.txt under cfg.Dir
// via a lumberjack-backed writer and returns a ready-to-use SlogLog.
func NewSlogLog(cfg Config) (*SlogLog, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("dvlog: create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, fmt.Sprintf("routing-output_%s.txt", cfg.Label))

	fileWriter := &lumberjack.Logger{
		Filename: path,
		MaxSize:  50, // MB; a single run's DV snapshots never approach this
	}

	var w io.Writer = fileWriter
	if cfg.MirrorStdout {
		w = io.MultiWriter(fileWriter, os.Stdout)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelOf(cfg.Level)})
	runID := uuid.NewString()

	return &SlogLog{
		logger: slog.New(handler).With("run_id", runID, "label", cfg.Label),
		runID:  runID,
	}, nil
}

func levelOf(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RunID returns the correlation id stamped on every line this run emits.
func (s *SlogLog) RunID() string { return s.runID }

func (s *SlogLog) Startup(selfLabel string, selfPort uint16, neighbors KV) {
	s.logger.Info("startup", "self_label", selfLabel, "self_port", selfPort, "neighbors", neighbors)
}

func (s *SlogLog) Broadcast(packetType string, neighborCount int) {
	s.logger.Info("broadcast", "type", packetType, "neighbor_count", neighborCount)
}

func (s *SlogLog) RouteChanged(dest, hop uint16, cost uint32) {
	s.logger.Info("route-changed", "dest_port", dest, "first_hop_port", hop, "cost", cost)
}

func (s *SlogLog) RouteWithdrawn(dest uint16) {
	s.logger.Info("route-withdrawn", "dest_port", dest)
}

func (s *SlogLog) TableFull(dest uint16) {
	s.logger.Warn("table-full", "dest_port", dest)
}

func (s *SlogLog) NeighborDead(port uint16) {
	s.logger.Info("neighbor-dead", "port", port)
}

func (s *SlogLog) Dropped(reason string, from uint16) {
	s.logger.Warn("dropped", "reason", reason, "from_port", from)
}

func (s *SlogLog) Delivered(srcLabel, dstLabel byte, payload string) {
	s.logger.Info("delivered", "src_label", string(srcLabel), "dst_label", string(dstLabel), "payload", payload)
}

func (s *SlogLog) Forwarded(srcLabel, dstLabel byte, arrivalPort, prevHop, nextHop uint16) {
	s.logger.Info("forwarded", "src_label", string(srcLabel), "dst_label", string(dstLabel), "arrival_port", arrivalPort, "prev_hop_port", prevHop, "next_hop_port", nextHop)
}
