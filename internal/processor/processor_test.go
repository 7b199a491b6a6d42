package processor_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcal_workspace/internal/graph"
	"fbcal_workspace/internal/processor"
	"fbcal_workspace/model"
)

var now = time.Date(2014, 7, 10, 18, 0, 0, 0, time.UTC)

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		42:      "42",
		999:     "999",
		1234:    "1.2K",
		15000:   "15K",
		123456:  "123K",
		1500000: "1.5M",
		2000000: "2M",
	}
	for n, want := range cases {
		assert.Equal(t, want, processor.FormatCount(n), "n=%d", n)
	}
}

func TestProcessDescriptionEscapesAndBreaks(t *testing.T) {
	got := processor.ProcessDescription("a <b>\nline two")
	assert.Equal(t, "a &lt;b&gt;<br>line two", got)
	assert.Empty(t, processor.ProcessDescription(""))
}

func TestFormatVenue(t *testing.T) {
	v := &graph.Venue{Street: "1 Hacker Way", City: "Menlo Park", State: "CA", Zip: "94025"}
	assert.Equal(t, "1 Hacker Way, Menlo Park, CA 94025", processor.FormatVenue(v))
	assert.Empty(t, processor.FormatVenue(nil))
	assert.Empty(t, processor.FormatVenue(&graph.Venue{}))
}

func TestFormatEventTimeSameDay(t *testing.T) {
	short, long := processor.FormatEventTime(
		"2014-07-04T19:00:00-0700", "2014-07-04T22:00:00-0700")
	assert.Equal(t, "Fri, 7/4/2014 at 7:00pm-10:00pm", short)
	assert.Empty(t, long)
}

func TestFormatEventTimeMultiDay(t *testing.T) {
	short, long := processor.FormatEventTime(
		"2014-07-04T19:00:00-0700", "2014-07-06T12:00:00-0700")
	assert.Equal(t, "Fri, 7/4/2014 - Sun, 7/6/2014", short)
	assert.Equal(t, "Fri, 7/4/2014 at 7:00pm to Sun, 7/6/2014 at 12:00pm", long)
}

func TestFormatEventTimeNoEnd(t *testing.T) {
	short, long := processor.FormatEventTime("2014-07-04T19:00:00-0700", "")
	assert.Equal(t, "Fri, 7/4/2014 at 7:00pm", short)
	assert.Empty(t, long)
}

func commentPage(n int) *graph.CommentPage {
	page := &graph.CommentPage{}
	for i := 0; i < n; i++ {
		page.Data = append(page.Data, graph.Comment{
			ID:      fmt.Sprintf("c%d", i),
			From:    graph.Author{Name: "Visitor"},
			Message: fmt.Sprintf("message %d", i),
		})
	}
	return page
}

func TestProcessAllCommentsVisibleHeldSplit(t *testing.T) {
	st := &model.Status{}
	processor.ProcessAllComments(st, commentPage(7), now)

	require.Len(t, st.Comments, 5)
	require.Len(t, st.ExtraComments, 2)
	for i, c := range st.Comments {
		assert.Equal(t, fmt.Sprintf("c%d", i), c.ID)
	}
	assert.Equal(t, "c5", st.ExtraComments[0].ID)
	assert.Equal(t, "c6", st.ExtraComments[1].ID)
	assert.Equal(t, "Show more replies", st.RepliesMessage)
}

func TestProcessAllCommentsNoHeldNoLabel(t *testing.T) {
	st := &model.Status{}
	processor.ProcessAllComments(st, commentPage(3), now)
	assert.Len(t, st.Comments, 3)
	assert.Empty(t, st.ExtraComments)
	assert.Empty(t, st.RepliesMessage)
}

func TestProcessAllCommentsRemoteTokenKeepsLabel(t *testing.T) {
	st := &model.Status{}
	page := commentPage(2)
	page.Paging = &graph.Paging{Next: "https://graph.facebook.com/1_2/comments?after=abc"}
	processor.ProcessAllComments(st, page, now)
	assert.Equal(t, "Show more replies", st.RepliesMessage)
	assert.Equal(t, page.Paging.Next, st.More)
}

func TestProcessStatus(t *testing.T) {
	post := graph.Post{
		ID:      "10_20",
		From:    graph.Author{Name: "Page Owner"},
		Message: "hello <world>",
	}
	post.Comments = commentPage(2)

	st := processor.ProcessStatus(post, now)
	assert.Equal(t, "10_20", st.ID)
	assert.Equal(t, "hello &lt;world&gt;", st.Message)
	assert.Zero(t, st.NumberLikes)
	assert.Len(t, st.Comments, 2)
	assert.False(t, st.AppPosted)
}

func TestProcessGuests(t *testing.T) {
	stats := processor.ProcessGuests(&graph.GuestPage{Data: []graph.GuestSummary{{
		AttendingCount:  1234,
		UnsureCount:     8,
		NotRepliedCount: 1500000,
	}}})
	require.NotNil(t, stats)
	assert.Equal(t, "1.2K", stats.Attending)
	assert.Equal(t, "8", stats.Unsure)
	assert.Equal(t, "1.5M", stats.NotReplied)

	assert.Nil(t, processor.ProcessGuests(&graph.GuestPage{}))
	assert.Nil(t, processor.ProcessGuests(nil))
}

func TestProcessEventDefaults(t *testing.T) {
	ev := processor.ProcessEvent(&graph.EventData{
		ID:    "55",
		Name:  "Launch Party",
		Owner: graph.Author{ID: "1", Name: "Acme"},
	})
	assert.Equal(t, "No time specified", ev.ShortTime)
	assert.Equal(t, "No location specified", ev.Location)
	assert.False(t, ev.DisplayDescription)
	assert.Nil(t, ev.Cover)
}
