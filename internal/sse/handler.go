package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to one client until it disconnects or the hub
// stops. ?types=a,b limits the stream to those event types.
// @Summary Catalog event stream
// @Description Server-sent events stream announcing catalog reloads
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Success 200
// @Failure 503
// @Router /api/v1/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var eventTypes []string
		for _, t := range strings.Split(r.URL.Query().Get(QueryParamTypes), ",") {
			if t = strings.TrimSpace(t); t != "" {
				eventTypes = append(eventTypes, t)
			}
		}

		client, ok := hub.Register(eventTypes)
		if !ok {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Filters: eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(event) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
