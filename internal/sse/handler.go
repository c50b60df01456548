package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Handler streams hub frames to one observer until the request ends or
// the hub stops. ?types= narrows the stream; Last-Event-ID resumes it.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var types []string
		for _, t := range strings.Split(r.URL.Query().Get(QueryParamTypes), ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		after, _ := strconv.ParseUint(r.Header.Get(HeaderLastEventID), 10, 64)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		sub := hub.Subscribe(types, after)
		log := slog.Default().With("subscriber", sub.ID)
		log.Info(LogMsgObserverConnected, "types", types, "resume_after", after, "observers", hub.Count())
		defer func() {
			hub.Unsubscribe(sub.ID)
			log.Info(LogMsgObserverDisconnected, "observers", hub.Count())
		}()

		if _, err := fmt.Fprintf(w, "retry: %d\n\n", RetryMillis); err != nil {
			return
		}
		hello := map[string]any{"subscriber": sub.ID, "types": types}
		if err := writeFrame(w, "", EventTypeConnected, hello); err != nil {
			return
		}
		flusher.Flush()

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case f, ok := <-sub.Frames:
				if !ok {
					return
				}
				if err := writeFrame(w, strconv.FormatUint(f.Seq, 10), f.Type, f); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-keepalive.C:
				if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// writeFrame encodes one SSE message. An empty id leaves the client's
// last event ID untouched.
func writeFrame(w io.Writer, id, eventType string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
	return err
}
