// Command acr-slicer copies the physics/graphics rows bracketed by a
// recording's Grafana annotations out of the telemetry database into the
// much smaller analysis database, either once for a given recording id
// or as a standing HTTP service Grafana can call on demand.
//
// Usage:
//
//	acr-slicer <recording_id> [--grafana-db path] [--telemetry-db path] [--analysis-db path]
//	acr-slicer --serve [--port N] [--grafana-db path] [--telemetry-db path] [--analysis-db path]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"acrtelemetry/internal/cliconfig"
	"acrtelemetry/internal/config"
	"acrtelemetry/internal/slicer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-slicer:", err)
		os.Exit(1)
	}

	serveFlag := flag.Bool("serve", false, "run as an HTTP service instead of exporting one recording and exiting")
	port := flag.Int("port", slicer.DefaultPort, "listen port in --serve mode")
	grafanaDBFlag := flag.String("grafana-db", "", "Grafana SQLite database path")
	telemetryDBFlag := flag.String("telemetry-db", "", "telemetry analytical database path (overrides configuration)")
	analysisDBFlag := flag.String("analysis-db", "", "analysis database path (overrides configuration; defaults to a sibling of telemetry-db)")
	flag.Parse()

	paths := cliconfig.ResolvePaths(cfg, "", *telemetryDBFlag, *analysisDBFlag, "", *grafanaDBFlag)
	if paths.GrafanaDB == "" {
		fmt.Fprintln(os.Stderr, "acr-slicer: --grafana-db PATH or ACR_GRAFANA_DB env required")
		os.Exit(1)
	}

	if *serveFlag {
		addr := fmt.Sprintf(":%d", *port)
		fmt.Printf("acr-slicer serving on http://localhost%s/export?recording_id=X\n", addr)
		if err := slicer.Serve(addr, paths.GrafanaDB, paths.AnalyticalDB, paths.SlicerAnalysis); err != nil {
			fmt.Fprintln(os.Stderr, "acr-slicer:", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage:")
		fmt.Fprintln(os.Stderr, "  acr-slicer <recording_id> [--grafana-db path] [--telemetry-db path] [--analysis-db path]")
		fmt.Fprintln(os.Stderr, "  acr-slicer --serve [--port N] [--grafana-db path] [--telemetry-db path] [--analysis-db path]")
		os.Exit(1)
	}
	recordingID, err := strconv.ParseInt(flag.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-slicer: invalid recording id:", flag.Arg(0))
		os.Exit(1)
	}

	msg, err := slicer.RunExport(recordingID, paths.GrafanaDB, paths.AnalyticalDB, paths.SlicerAnalysis)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-slicer:", err)
		os.Exit(1)
	}
	fmt.Println(msg)
}
