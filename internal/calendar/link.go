// Package calendar builds Google Calendar quick-add links from
// model-planned events.
package calendar

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

const renderBase = "https://www.google.com/calendar/render?action=TEMPLATE"

var ErrBadEvent = errors.New("calendar: event is not linkable")

// QuickAddURL builds the render-template link for an event. The dates
// parameter carries both timestamps with their `-` and `:` characters
// stripped; the timestamps themselves are taken verbatim, with no
// start-before-end or timezone checks.
func QuickAddURL(event model.CalendarEvent) (string, error) {
	if err := event.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEvent, err)
	}
	start := compactTimestamp(event.StartTime)
	end := compactTimestamp(event.EndTime)
	if start == "" || end == "" {
		return "", fmt.Errorf("%w: empty timestamp", ErrBadEvent)
	}
	return fmt.Sprintf("%s&text=%s&details=%s&dates=%s/%s",
		renderBase,
		encodeComponent(event.Summary),
		encodeComponent(event.Description),
		start,
		end,
	), nil
}

func compactTimestamp(iso string) string {
	replacer := strings.NewReplacer("-", "", ":", "")
	return strings.TrimSpace(replacer.Replace(iso))
}

// encodeComponent percent-encodes a query value with %20 for spaces,
// matching the quick-add parser's expectations.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
