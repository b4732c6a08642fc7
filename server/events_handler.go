package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"pachli/logic"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	eventQueueLen     = 64
	eventPingInterval = 30 * time.Second
)

var knownEventKinds = []logic.EventKind{
	logic.EvMuteConversation,
	logic.EvMute,
	logic.EvBlock,
	logic.EvStatusDeleted,
	logic.EvDomainBlock,
	logic.EvActiveAccountChanged,
	logic.EvFilterChanged,
}

// ?kinds=block,mute&account_id=2
func parseEventFilter(q url.Values) (logic.EventFilter, error) {
	var res logic.EventFilter
	if kinds := q.Get("kinds"); kinds != "" {
		for _, str := range strings.Split(kinds, ",") {
			kind := logic.EventKind(strings.TrimSpace(str))
			if !slices.Contains(knownEventKinds, kind) {
				return res, fmt.Errorf("unknown event kind: %s", str)
			}
			res.Kinds = append(res.Kinds, kind)
		}
	}
	if str := q.Get("account_id"); str != "" {
		id, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return res, fmt.Errorf("invalid account_id: %s", str)
		}
		res.AccountId = id
	}
	return res, nil
}

// Streams bus events as server-sent events until the client disconnects.
func (hg *apiHandlerGroup) getEvents(w http.ResponseWriter, r *http.Request) {

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	filter, err := parseEventFilter(r.URL.Query())
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return
	}

	ctx := r.Context()
	subId := uuid.NewString()
	queue := make(chan logic.Event, eventQueueLen)
	err = hg.eventBus.Subscribe(ctx, subId, filter, func(ev logic.Event) {
		select {
		case queue <- ev:
		default:
			hg.logger.Warnf("Event stream %s is not keeping up; dropped %s event", subId, ev.Kind())
		}
	})
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	defer func() { _ = hg.eventBus.Unsubscribe(subId) }()

	hg.logger.Infof("Event stream %s opened", subId)
	defer hg.logger.Infof("Event stream %s closed", subId)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ping := time.NewTicker(eventPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev := <-queue:
			data, err := json.Marshal(ev)
			if err != nil {
				hg.logger.Errorf("Failed to serialize %s event: %v", ev.Kind(), err)
				continue
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind(), data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
