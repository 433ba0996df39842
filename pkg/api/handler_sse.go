package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/attune-health/attune/pkg/events"
)

// StreamEvents handles GET /sse/events/:patient_id. The durable event
// table is the source of truth: the loop re-queries on its poll timer
// and streams everything past the watermark. The hub wake (fed by
// pg_notify) only shortcuts the wait; a missed wake costs at most one
// poll interval. Query param since_id replays history from a known
// watermark, so reconnecting clients never miss events; without it the
// stream starts at the patient's newest event and tails live.
func (s *Server) StreamEvents(c *gin.Context) {
	patientID := c.Param("patient_id")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id required"})
		return
	}

	var sinceID int64
	if raw, ok := c.GetQuery("since_id"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since_id must be a non-negative integer"})
			return
		}
		sinceID = parsed
	} else {
		latest, err := s.eventStore.LatestID(c.Request.Context(), patientID)
		if err != nil {
			s.respondServiceError(c, err)
			return
		}
		sinceID = latest
	}

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	wake, cancelSub := s.hub.Subscribe(patientID)
	channel := events.PatientChannel(patientID)
	if s.listener != nil {
		if err := s.listener.Subscribe(ctx, channel); err != nil {
			s.logger.Warn("SSE: LISTEN failed, poll-only stream",
				"patient_id", patientID, "error", err)
		}
	}
	defer func() {
		cancelSub()
		// Drop the LISTEN only when the last subscriber for this
		// patient disconnects.
		if s.listener != nil && s.hub.SubscriberCount(patientID) == 0 {
			cleanup, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := s.listener.Unsubscribe(cleanup, channel); err != nil {
				s.logger.Warn("SSE: UNLISTEN failed", "patient_id", patientID, "error", err)
			}
		}
	}()

	poll := time.NewTicker(s.cfg.SSEPollInterval)
	defer poll.Stop()
	keepAlive := time.NewTicker(s.cfg.SSEKeepAlive)
	defer keepAlive.Stop()

	for {
		batch, err := s.eventStore.ListSince(ctx, patientID, sinceID)
		switch {
		case err != nil && ctx.Err() != nil:
			return
		case err != nil:
			s.logger.Error("SSE: event query failed", "patient_id", patientID, "error", err)
		default:
			for _, event := range batch {
				frame, err := event.SSEFrame()
				if err != nil {
					s.logger.Error("SSE: dropping unmarshalable event",
						"event_id", event.ID, "error", err)
					sinceID = event.ID
					continue
				}
				if _, err := c.Writer.Write(frame); err != nil {
					return
				}
				sinceID = event.ID
			}
			if len(batch) > 0 {
				c.Writer.Flush()
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-wake:
		case <-poll.C:
		case <-keepAlive.C:
			if _, err := c.Writer.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
