package slicer

import (
	"fmt"
	"net/http"
	"strconv"
)

// DefaultPort is the port the slicer's HTTP export endpoint listens on
// when the caller doesn't override it.
const DefaultPort = 9876

// ExportHandler builds the HTTP handler behind Serve: GET
// /export?recording_id=N runs RunExport against the given databases and
// reports the outcome as an HTML body; any other path is a 404.
func ExportHandler(grafanaDB, telemetryDB, analysisDB string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("recording_id")
		if raw == "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "<html><body>Missing recording_id</body></html>")
			return
		}
		recordingID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "<html><body>Missing recording_id</body></html>")
			return
		}

		msg, err := RunExport(recordingID, grafanaDB, telemetryDB, analysisDB)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "<html><body>Error: %s</body></html>", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "<html><body>%s</body></html>", msg)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "<html><body>Not found. Use /export?recording_id=X</body></html>")
	})
	return mux
}

// Serve starts the blocking HTTP export endpoint on addr.
func Serve(addr, grafanaDB, telemetryDB, analysisDB string) error {
	return http.ListenAndServe(addr, ExportHandler(grafanaDB, telemetryDB, analysisDB))
}
