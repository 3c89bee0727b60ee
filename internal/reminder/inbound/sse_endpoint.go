package inbound

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const ssePingInterval = 25 * time.Second

// StreamHandler streams due-reminder events to the browser over SSE.
func (h *HTTPEndpoint) StreamHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		ctx := r.Context()
		events := h.uc.Subscribe(ctx)

		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		ticker := time.NewTicker(ssePingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
				flusher.Flush()

			case evt, open := <-events:
				if !open {
					return
				}

				data, err := json.Marshal(evt)
				if err != nil {
					continue
				}

				fmt.Fprintf(w, "event: reminder\ndata: %s\n\n", data)
				flusher.Flush()
			}
		}
	})
}
