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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"dvrouted/config"
	"dvrouted/dv"
	"dvrouted/dvlog"
	"dvrouted/inject"
	"dvrouted/metrics"
	"dvrouted/topology"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options] <port>                       run as a routing node\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s [options] <port> <src_label> <dst_label>  inject one payload and exit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "path to an optional YAML config file")
	topologyFlag := flag.String("topology", "", "path to the topology file (overrides config)")
	logDirFlag := flag.String("log-dir", "", "directory for the per-run log file (overrides config)")
	logLevelFlag := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	metricsAddrFlag := flag.String("metrics-addr", "", "Prometheus listen address, e.g. :9090 (overrides config, empty disables)")
	noMirror := flag.Bool("no-mirror-stdout", false, "do not mirror log output to stdout")

	flag.Parse()
	args := flag.Args()

	if len(args) != 1 && len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}

	port, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		log.Fatalf("dvrouted: bad port %q: %v", args[0], err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("dvrouted: %v", err)
	}
	var mirror *bool
	if *noMirror {
		v := false
		mirror = &v
	}
	cfg = cfg.Override(*topologyFlag, *logDirFlag, *logLevelFlag, *metricsAddrFlag, mirror)

	topo, err := topology.Load(cfg.TopologyPath)
	if err != nil {
		log.Fatalf("dvrouted: %v", err)
	}

	if len(args) == 3 {
		runInjector(topo, uint16(port), args[1], args[2])
		return
	}

	runNode(cfg, topo, uint16(port))
}

func runInjector(topo *topology.Topology, port uint16, srcArg, dstArg string) {
	if len(srcArg) != 1 || len(dstArg) != 1 {
		log.Fatal("dvrouted: labels must be a single character")
	}

	fmt.Fprint(os.Stderr, "payload> ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	payload := []byte(trimNewline(line))
	if len(payload) > dv.MaxPayload {
		payload = payload[:dv.MaxPayload]
	}

	if err := inject.Send(topo, port, srcArg[0], dstArg[0], payload); err != nil {
		log.Fatalf("dvrouted: %v", err)
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func runNode(cfg config.Config, topo *topology.Topology, port uint16) {
	selfLabel, err := topo.SelfLabel(port)
	if err != nil {
		log.Fatalf("dvrouted: %v", err)
	}
	links := topo.Neighbors(selfLabel)

	logCfg := dvlog.Config{
		Dir:          cfg.LogDir,
		Label:        string(selfLabel),
		Level:        cfg.LogLevel,
		MirrorStdout: cfg.MirrorStdout,
	}
	logger, err := dvlog.NewSlogLog(logCfg)
	if err != nil {
		log.Fatalf("dvrouted: %v", err)
	}

	var sink dv.MetricsSink
	var metricsCtx context.Context
	var metricsCancel context.CancelFunc
	if cfg.MetricsAddr != "" {
		m := metrics.New(string(selfLabel))
		sink = m
		metricsCtx, metricsCancel = context.WithCancel(context.Background())
		go func() {
			if err := m.Serve(metricsCtx, cfg.MetricsAddr); err != nil {
				log.Printf("dvrouted: metrics server: %v", err)
			}
		}()
	}

	node := dv.NewNode(selfLabel, port, links, logger, sink)
	if err := node.Listen(); err != nil {
		log.Fatalf("dvrouted: %v", err)
	}
	defer node.Close()

	node.AnnounceInitial()

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		close(stop)
	}()

	node.Run(stop)

	if metricsCancel != nil {
		metricsCancel()
	}
}
