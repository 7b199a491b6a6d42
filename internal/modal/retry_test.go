package modal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcal_workspace/internal/fblogin"
	"fbcal_workspace/internal/graph"
)

func failLike(caller *fakeCaller, postID string) {
	caller.fail["POST /"+postID+"/likes"] = &graph.Error{Message: "down", Type: "OAuthException", Code: 2}
}

func TestRetryReplaysIdenticalTriple(t *testing.T) {
	caller := newFakeCaller()
	failLike(caller, "p0")
	s := newTestSession(caller, allGranted())
	seedFeed(s, 1)

	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.Equal(t, SituationFacebook, s.situation)
	require.Equal(t, 1, caller.count("POST /p0/likes"))

	delete(caller.fail, "POST /p0/likes")
	require.NoError(t, s.Retry(context.Background()))
	assert.Equal(t, 2, caller.count("POST /p0/likes"))
	assert.Equal(t, 1, s.feed[0].NumberLikes)
	assert.True(t, s.feed[0].UserLiked)
	assert.Equal(t, "Success!", s.message.Body)
	assert.Equal(t, SituationIdle, s.situation)
}

func TestNewDispatchOverwritesPending(t *testing.T) {
	caller := newFakeCaller()
	failLike(caller, "p0")
	caller.fail["POST /p1/comments"] = &graph.Error{Message: "down", Type: "OAuthException", Code: 2}
	s := newTestSession(caller, allGranted())
	seedFeed(s, 2)

	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.ErrorIs(t, s.Interact(context.Background(), ActionComment, "1", "hi"), ErrInteraction)
	assert.Equal(t, pendingInteraction{action: ActionComment, key: "1", message: "hi"}, s.pending)
	assert.True(t, s.postError)
	assert.Equal(t, "hi", s.userPost)

	// Retry goes after the comment, not the like.
	require.ErrorIs(t, s.Retry(context.Background()), ErrInteraction)
	assert.Equal(t, 2, caller.count("POST /p1/comments"))
	assert.Equal(t, 1, caller.count("POST /p0/likes"))
}

func TestRetryFailureLeavesFreshModal(t *testing.T) {
	caller := newFakeCaller()
	failLike(caller, "p0")
	s := newTestSession(caller, allGranted())
	seedFeed(s, 1)

	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.ErrorIs(t, s.Retry(context.Background()), ErrInteraction)
	assert.Equal(t, SituationFacebook, s.situation)
	assert.Equal(t, errorTitle, s.message.Title)
	assert.Equal(t, 2, caller.count("POST /p0/likes"))
}

func TestRetryDeniedPermissionRerequestsScope(t *testing.T) {
	caller := newFakeCaller()
	conn := &stubConn{
		status:      fblogin.StatusConnected,
		loginStatus: fblogin.StatusConnected,
		perms:       []string{fblogin.ScopeRSVP},
	}
	s := newTestSession(caller, conn)
	seedFeed(s, 1)

	// First attempt: publish scope missing, consent resolves without it.
	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.Equal(t, SituationDeclinedPermission, s.situation)
	require.Empty(t, caller.calls)
	require.Equal(t, []bool{false}, conn.loginCalls)

	// The visitor grants it on the re-prompt.
	conn.perms = append(conn.perms, fblogin.ScopePublish)
	require.NoError(t, s.Retry(context.Background()))
	assert.Equal(t, []bool{false, true}, conn.loginCalls)
	assert.Equal(t, 1, caller.count("POST /p0/likes"))
	assert.True(t, s.feed[0].UserLiked)
}

func TestRetryDeniedPermissionStillRefused(t *testing.T) {
	caller := newFakeCaller()
	conn := &stubConn{
		status:      fblogin.StatusConnected,
		loginStatus: fblogin.StatusConnected,
		perms:       []string{fblogin.ScopeRSVP},
	}
	s := newTestSession(caller, conn)
	seedFeed(s, 1)

	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.ErrorIs(t, s.Retry(context.Background()), ErrInteraction)
	assert.Equal(t, SituationDeclinedPermission, s.situation)
	assert.Empty(t, caller.calls)
}

func TestWaitRetryReplaysOnceReady(t *testing.T) {
	caller := newFakeCaller()
	s := newTestSession(caller, allGranted())
	seedFeed(s, 1)
	ready := false
	s.ready = func() bool { return ready }

	require.ErrorIs(t, s.Interact(context.Background(), ActionLike, "0", ""), ErrInteraction)
	require.Equal(t, SituationWait, s.situation)
	require.Empty(t, caller.calls)
	assert.False(t, s.feed[0].Liking)

	ready = true
	require.NoError(t, s.Retry(context.Background()))
	assert.Equal(t, 1, caller.count("POST /p0/likes"))
}

func TestWaitRetryRestartsPendingShare(t *testing.T) {
	caller := newFakeCaller()
	s := newTestSession(caller, allGranted())
	ready := false
	s.ready = func() bool { return ready }

	require.NoError(t, s.ShareEvent())
	require.Equal(t, SituationWait, s.situation)
	require.True(t, s.pending.share)

	ready = true
	require.NoError(t, s.Retry(context.Background()))
	assert.Equal(t, SituationLink, s.situation)
	assert.True(t, s.message.ShowLink)
	assert.Equal(t, "https://www.facebook.com/events/ev1", s.shareLink)
	assert.Empty(t, caller.calls)
}
