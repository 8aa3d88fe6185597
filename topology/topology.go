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

// Package topology parses the line-oriented link file and derives a node's
// own label, its direct neighbors, and the label-to-port map the injector
// needs to resolve a destination.
package topology

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const maxLineLength = 80

// Link is one directed edge as declared in the topology file.
type Link struct {
	SrcLabel byte
	DstLabel byte
	DstPort  uint16
	Cost     uint16
}

// Topology is the fully parsed link file.
type Topology struct {
	links []Link
}

// Load reads and parses the topology file at path.
func Load(path string) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}
	defer f.Close()

	t := &Topology{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(line) > maxLineLength {
			return nil, fmt.Errorf("topology: line %d exceeds %d characters", lineNo, maxLineLength)
		}
		link, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("topology: line %d: %w", lineNo, err)
		}
		t.links = append(t.links, link)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}
	if len(t.links) == 0 {
		return nil, fmt.Errorf("topology: %s declares no links", path)
	}
	return t, nil
}

func parseLine(line string) (Link, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Link{}, fmt.Errorf("expected 4 comma-separated fields, got %d", len(fields))
	}
	src := strings.TrimSpace(fields[0])
	dst := strings.TrimSpace(fields[1])
	if len(src) != 1 || len(dst) != 1 {
		return Link{}, fmt.Errorf("labels must be a single character")
	}
	port, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 16)
	if err != nil {
		return Link{}, fmt.Errorf("bad dst_port: %w", err)
	}
	cost, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 16)
	if err != nil {
		return Link{}, fmt.Errorf("bad link_cost: %w", err)
	}
	return Link{
		SrcLabel: src[0],
		DstLabel: dst[0],
		DstPort:  uint16(port),
		Cost:     uint16(cost),
	}, nil
}

// SelfLabel finds the first line whose dst_port equals ownPort and returns
// its dst_label, identifying this node.
func (t *Topology) SelfLabel(ownPort uint16) (byte, error) {
	for _, l := range t.links {
		if l.DstPort == ownPort {
			return l.DstLabel, nil
		}
	}
	return 0, fmt.Errorf("topology: no line has dst_port %d", ownPort)
}

// Neighbors returns the link cost per neighbor port for every outgoing edge
// whose src_label matches selfLabel.
func (t *Topology) Neighbors(selfLabel byte) map[uint16]uint32 {
	out := make(map[uint16]uint32)
	for _, l := range t.links {
		if l.SrcLabel == selfLabel {
			out[l.DstPort] = uint32(l.Cost)
		}
	}
	return out
}

// LabelPort returns the port bound to label, as declared by any line naming
// it as a dst_label. Used by the injector to resolve both the first hop
// (src_label's port) and the ultimate destination (dst_label's port).
func (t *Topology) LabelPort(label byte) (uint16, error) {
	for _, l := range t.links {
		if l.DstLabel == label {
			return l.DstPort, nil
		}
	}
	return 0, fmt.Errorf("topology: no port known for label %q", string(label))
}
