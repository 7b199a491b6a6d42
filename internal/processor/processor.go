// Package processor turns raw Graph objects into the display-ready types
// the modal renders. Everything here is pure: callers pass the clock in.
package processor

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"fbcal_workspace/configs"
	"fbcal_workspace/internal/graph"
	"fbcal_workspace/model"
)

// Messages come from Facebook users; they are escaped here and newlines
// become <br> so the frontend can render them as trusted HTML.
func sanitize(message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

// ProcessDescription formats an event description, "" when absent.
func ProcessDescription(description string) string {
	if description == "" {
		return ""
	}
	return sanitize(description)
}

var timeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func dayDate(t time.Time) string {
	return t.Format("Mon, 1/2/2006")
}

func clockTime(t time.Time) string {
	return strings.ToLower(t.Format("3:04pm"))
}

// FormatEventTime renders the event time range. The long form is only set
// for multi-day events, where the short form collapses to a date range.
func FormatEventTime(startTime, endTime string) (short, long string) {
	start, ok := parseTime(startTime)
	if !ok {
		return "No time specified", ""
	}
	end, haveEnd := parseTime(endTime)
	if !haveEnd {
		return dayDate(start) + " at " + clockTime(start), ""
	}
	if sameDay(start, end) {
		return dayDate(start) + " at " + clockTime(start) + "-" + clockTime(end), ""
	}
	short = dayDate(start) + " - " + dayDate(end)
	long = dayDate(start) + " at " + clockTime(start) +
		" to " + dayDate(end) + " at " + clockTime(end)
	return short, long
}

// FormatVenue joins the non-empty venue parts, "" when nothing is set.
func FormatVenue(v *graph.Venue) string {
	if v == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{v.Street, v.City, v.State, v.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	joined := strings.Join(parts, ", ")
	if v.Zip != "" {
		joined += " " + v.Zip
	}
	return joined
}

// FormatCount renders a counter in at most three characters ("1.2K",
// "123K", "1.5M") so it fits the guest-stats boxes.
func FormatCount(n int) string {
	format := func(v float64, suffix string) string {
		if v >= 10 {
			return strconv.Itoa(int(v)) + suffix
		}
		s := strconv.FormatFloat(v, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return s + suffix
	}
	switch {
	case n >= 1000000:
		return format(float64(n)/1000000, "M")
	case n >= 1000:
		return format(float64(n)/1000, "K")
	default:
		return strconv.Itoa(n)
	}
}

// ProcessGuests formats the guest-statistics row, nil when the query came
// back empty.
func ProcessGuests(page *graph.GuestPage) *model.GuestStats {
	if page == nil || len(page.Data) == 0 {
		return nil
	}
	row := page.Data[0]
	return &model.GuestStats{
		Attending:  FormatCount(row.AttendingCount),
		Unsure:     FormatCount(row.UnsureCount),
		NotReplied: FormatCount(row.NotRepliedCount),
	}
}

// ProcessEvent builds the modal header data from a raw event.
func ProcessEvent(ev *graph.EventData) *model.Event {
	out := &model.Event{
		ID:      ev.ID,
		Name:    ev.Name,
		Owner:   ev.Owner.Name,
		OwnerID: ev.Owner.ID,
	}
	out.Description = ProcessDescription(ev.Description)
	out.DisplayDescription = out.Description != ""
	if ev.StartTime != "" {
		out.ShortTime, out.LongTime = FormatEventTime(ev.StartTime, ev.EndTime)
	} else {
		out.ShortTime = "No time specified"
	}
	if ev.Location != "" {
		out.Location = ev.Location
		out.Venue = FormatVenue(ev.Venue)
	} else {
		out.Location = "No location specified"
	}
	if ev.Cover != nil && ev.Cover.Source != "" {
		out.Cover = &model.Cover{
			Source:  ev.Cover.Source,
			OffsetX: ev.Cover.OffsetX,
			OffsetY: ev.Cover.OffsetY,
		}
	}
	return out
}

// RelativeTime renders a post time relative to now; posts from earlier days
// keep an absolute stamp.
func RelativeTime(t, now time.Time) string {
	if sameDay(t, now) {
		if h := now.Hour() - t.Hour(); h > 0 {
			return fmt.Sprintf("%d hours ago", h)
		}
		if m := now.Minute() - t.Minute(); m > 0 {
			return fmt.Sprintf("%d minutes ago", m)
		}
		return "Just now"
	}
	return t.Format("1/2/2006, ") + clockTime(t)
}

func createdTime(s string, now time.Time) string {
	t, ok := parseTime(s)
	if !ok {
		return ""
	}
	return RelativeTime(t, now)
}

// ProcessComment converts one raw comment.
func ProcessComment(c graph.Comment, now time.Time) model.Comment {
	out := model.Comment{
		ID:          c.ID,
		Name:        c.From.Name,
		Time:        createdTime(c.CreatedTime, now),
		NumberLikes: c.LikeCount,
		CanRemove:   c.CanRemove,
	}
	if c.Message != "" {
		out.Message = sanitize(c.Message)
	}
	return out
}

// ProcessAllComments merges a raw comment page into a status, keeping the
// visible window at configs.VisibleWindow until the held suffix is drained,
// and refreshes the next-page token and the replies label.
func ProcessAllComments(st *model.Status, page *graph.CommentPage, now time.Time) {
	st.More = ""
	if page != nil {
		for j, raw := range page.Data {
			com := ProcessComment(raw, now)
			if len(st.Comments) < configs.VisibleWindow || j < configs.VisibleWindow {
				st.Comments = append(st.Comments, com)
			} else {
				st.ExtraComments = append(st.ExtraComments, com)
			}
		}
		if page.Paging != nil {
			st.More = page.Paging.Next
		}
	}
	if st.More != "" || len(st.ExtraComments) > 0 {
		st.RepliesMessage = "Show more replies"
	} else {
		st.RepliesMessage = ""
	}
}

// ProcessStatus converts one raw post. Callers drop message-less posts
// before calling; the feed never shows them.
func ProcessStatus(p graph.Post, now time.Time) model.Status {
	st := model.Status{
		ID:           p.ID,
		Name:         p.From.Name,
		Message:      sanitize(p.Message),
		Picture:      p.Picture,
		Link:         p.Link,
		LinkName:     p.Name,
		Caption:      p.Caption,
		Description:  p.Description,
		Time:         createdTime(p.CreatedTime, now),
		NumberLikes:  p.LikeCount(),
		NumberShares: p.ShareCount(),
		Comments:     []model.Comment{},
	}
	ProcessAllComments(&st, p.Comments, now)
	return st
}
