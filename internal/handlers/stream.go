package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/pkg/logger"
)

// streamFeed serves a live feed as server-sent events. Each emission is
// one "data:" line holding the full snapshot as a JSON array. The feed is
// closed when the client disconnects; a terminal feed error ends the
// stream after an "error" event.
func streamFeed[T any](w http.ResponseWriter, r *http.Request, f *feed.Feed[T]) {
	defer f.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := logger.FromContext(r.Context())

	for {
		select {
		case <-r.Context().Done():
			return

		case records, ok := <-f.Updates():
			if !ok {
				// The feed ended. Err is closed by then, so this read
				// never blocks; a buffered terminal error is surfaced.
				if err := <-f.Err(); err != nil {
					log.Error("stream ended with error", "error", err)
					w.Write([]byte("event: error\ndata: {\"message\":\"stream failed\"}\n\n"))
					flusher.Flush()
				}
				return
			}
			payload, err := json.Marshal(records)
			if err != nil {
				log.Error("failed to encode stream snapshot", "error", err)
				return
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if _, err := w.Write(payload); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
