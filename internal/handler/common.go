package handler // handler defines http handlers

import (
	"strconv" // strconv converts path params to numeric types
	"strings" // strings provides trimming and case helpers
	"time"    // time parses submitted show start times

	"github.com/gigboard/gigboard/internal/queue"           // queue defines the activity event payload
	queue_publisher "github.com/gigboard/gigboard/internal/service" // queue_publisher sends activity events to the broker
	"github.com/labstack/echo/v4"                           // echo defines request context types
)

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// parseCheckbox interprets an HTML checkbox value. Browsers submit "y"
// or "on" for a checked box and omit the field entirely otherwise;
// JSON clients send "true". Anything else counts as unchecked.
func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

// startTimeLayouts are the accepted formats for submitted show start
// times: RFC3339 from API clients and the plain datetime format the
// booking form posts.
var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"}

// parseStartTime parses a submitted start time, trying each accepted
// layout in order. Times without an offset are taken as UTC.
func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range startTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// publishActivity sends a directory activity event to the broker on a
// best-effort basis. Publish failures are logged by the publisher and
// never affect the request outcome.
func publishActivity(c echo.Context, kind string, id uint64, name, action string) {
	_ = queue_publisher.PublishDirectoryActivity(c.Request().Context(), queue.DirectoryEvent{
		EntityKind: kind,
		EntityID:   id,
		Name:       name,
		Action:     action,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
