package modal

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcal_workspace/internal/graph"
)

func feedPage(n int, next string) *graph.FeedPage {
	page := &graph.FeedPage{}
	for i := 0; i < n; i++ {
		page.Data = append(page.Data, graph.Post{
			ID:      fmt.Sprintf("p%d", i),
			From:    graph.Author{Name: "Someone"},
			Message: fmt.Sprintf("post %d", i),
		})
	}
	if next != "" {
		page.Paging = &graph.Paging{Next: next}
	}
	return page
}

func TestMergeFeedPageSplitsVisibleAndHeld(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	s.mergeFeedPage(feedPage(7, ""))

	require.Len(t, s.feed, 5)
	require.Len(t, s.extraFeed, 2)
	assert.Equal(t, "p5", s.extraFeed[0].ID)
	assert.Equal(t, "p6", s.extraFeed[1].ID)
	assert.Equal(t, morePostsLabel, s.moreFeedMsg)
}

func TestMergeFeedPageDropsMessagelessPosts(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	page := feedPage(3, "")
	page.Data[1].Message = ""
	s.mergeFeedPage(page)

	require.Len(t, s.feed, 2)
	assert.Equal(t, "p0", s.feed[0].ID)
	assert.Equal(t, "p2", s.feed[1].ID)
}

func TestShowMoreFeedPromotesHeldInOrder(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	s.mergeFeedPage(feedPage(7, ""))

	require.NoError(t, s.ShowMoreFeed(context.Background()))
	require.Len(t, s.feed, 7)
	for i, st := range s.feed {
		assert.Equal(t, fmt.Sprintf("p%d", i), st.ID)
	}
	assert.Empty(t, s.extraFeed)
	assert.Empty(t, s.moreFeedMsg)
}

func TestShowMoreFeedKeepsLabelWhileRemotePagesRemain(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	s.mergeFeedPage(feedPage(7, "https://graph.facebook.com/v2.0/ev1/feed?until=123"))

	require.NoError(t, s.ShowMoreFeed(context.Background()))
	assert.Len(t, s.feed, 7)
	assert.Equal(t, morePostsLabel, s.moreFeedMsg)
}

func TestShowMoreFeedFetchesNextRemotePage(t *testing.T) {
	caller := newFakeCaller()
	caller.objects["GET /ev1/feed"] = feedPage(2, "")
	s := newTestSession(caller, allGranted())
	s.mergeFeedPage(feedPage(3, "https://graph.facebook.com/v2.0/ev1/feed?until=123"))

	require.NoError(t, s.ShowMoreFeed(context.Background()))
	assert.Equal(t, []string{"GET /ev1/feed"}, caller.calls)
	assert.Len(t, s.feed, 5)
	assert.Empty(t, s.moreFeedMsg)
}

func TestShowMoreFeedRemoteFailureSetsRetryLabel(t *testing.T) {
	caller := newFakeCaller()
	caller.fail["GET /ev1/feed"] = &graph.Error{Message: "down", Type: "OAuthException", Code: 2}
	s := newTestSession(caller, allGranted())
	s.mergeFeedPage(feedPage(1, "https://graph.facebook.com/v2.0/ev1/feed?until=123"))

	err := s.ShowMoreFeed(context.Background())
	require.Error(t, err)
	assert.Equal(t, morePostsFailed, s.moreFeedMsg)
	assert.False(t, s.gettingFeed)
}

func TestShowMoreFeedUnparseablePagingDegrades(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	s.mergeFeedPage(feedPage(1, "https://graph.facebook.com/v2.0/ev1/feed?limit=25"))

	require.NoError(t, s.ShowMoreFeed(context.Background()))
	assert.Empty(t, s.nextFeed)
	assert.Empty(t, s.moreFeedMsg)
}

func TestShowMoreRepliesSevenCommentReveal(t *testing.T) {
	s := newTestSession(newFakeCaller(), allGranted())
	page := feedPage(1, "")
	page.Data[0].Comments = commentPage(7)
	s.mergeFeedPage(page)

	st := &s.feed[0]
	require.Len(t, st.Comments, 5)
	require.Len(t, st.ExtraComments, 2)
	require.Equal(t, moreRepliesLabel, st.RepliesMessage)

	require.NoError(t, s.ShowMoreReplies(context.Background(), 0))
	require.Len(t, st.Comments, 7)
	for i, c := range st.Comments {
		assert.Equal(t, fmt.Sprintf("c%d", i), c.ID)
	}
	assert.Empty(t, st.ExtraComments)
	assert.Empty(t, st.RepliesMessage)
}

func TestShowMoreRepliesFetchesRemotePage(t *testing.T) {
	caller := newFakeCaller()
	caller.objects["GET /1_2/comments"] = commentPage(2)
	s := newTestSession(caller, allGranted())
	page := feedPage(1, "")
	page.Data[0].Comments = commentPage(3)
	page.Data[0].Comments.Paging = &graph.Paging{
		Next: "https://graph.facebook.com/v2.0/1_2/comments?after=abc",
	}
	s.mergeFeedPage(page)

	require.NoError(t, s.ShowMoreReplies(context.Background(), 0))
	assert.Equal(t, []string{"GET /1_2/comments"}, caller.calls)
	assert.Len(t, s.feed[0].Comments, 5)
	assert.False(t, s.feed[0].GettingReplies)
}

func commentPage(n int) *graph.CommentPage {
	page := &graph.CommentPage{}
	for i := 0; i < n; i++ {
		page.Data = append(page.Data, graph.Comment{
			ID:      fmt.Sprintf("c%d", i),
			From:    graph.Author{Name: "Visitor"},
			Message: fmt.Sprintf("reply %d", i),
		})
	}
	return page
}
