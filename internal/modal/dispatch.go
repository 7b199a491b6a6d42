package modal

import (
	"context"
	"fmt"
	"strconv"

	"fbcal_workspace/internal/fblogin"
	"fbcal_workspace/internal/processor"
	"fbcal_workspace/model"
)

// Action is the closed set of Facebook interactions the modal offers.
type Action int

const (
	ActionAttending Action = iota
	ActionMaybe
	ActionDeclined
	ActionPost
	ActionComment
	ActionLike
	ActionUnlike
	ActionLikeComment
	ActionUnlikeComment
	ActionDeletePost
	ActionDeleteComment
)

var actionNames = map[Action]string{
	ActionAttending:     "attending",
	ActionMaybe:         "maybe",
	ActionDeclined:      "declined",
	ActionPost:          "post",
	ActionComment:       "comment",
	ActionLike:          "like",
	ActionUnlike:        "unlike",
	ActionLikeComment:   "likeComment",
	ActionUnlikeComment: "unlikeComment",
	ActionDeletePost:    "deletePost",
	ActionDeleteComment: "deleteComment",
}

func (a Action) String() string { return actionNames[a] }

// ParseAction resolves the wire name of an action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

func (a Action) isRSVP() bool {
	return a == ActionAttending || a == ActionMaybe || a == ActionDeclined
}

func (a Action) isPostLike() bool {
	return a == ActionLike || a == ActionUnlike
}

func (a Action) isCommentTarget() bool {
	return a == ActionLikeComment || a == ActionUnlikeComment || a == ActionDeleteComment
}

func (a Action) likeFamily() bool {
	return a.isPostLike() || a == ActionLikeComment || a == ActionUnlikeComment
}

// Scope is the permission the action needs: RSVP actions need the events
// scope, everything else publishes on the visitor's behalf.
func (a Action) Scope() string {
	if a.isRSVP() {
		return fblogin.ScopeRSVP
	}
	return fblogin.ScopePublish
}

// target is a resolved interaction: the Graph object id to hit plus the
// structural indexes needed to mutate local state afterwards. replayKey is
// the key to store for try-again, which for index-keyed actions is the
// original index, not the resolved object id.
type target struct {
	key          string
	replayKey    string
	feedIndex    int
	commentIndex int
}

// Interact validates, authorizes and performs one visitor action, then
// reconciles local state. On failure the parameter triple is captured for
// the try-again flow and the message modal is raised.
func (s *Session) Interact(ctx context.Context, action Action, key, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()
	return s.interactLocked(ctx, action, key, message)
}

func (s *Session) interactLocked(ctx context.Context, action Action, key, message string) error {
	if !s.settings.Commenting {
		return ErrRejected
	}
	t, ok := s.resolve(action, key, message)
	if !ok {
		return ErrRejected
	}

	if !s.ready() {
		s.setPending(action, t, message)
		s.releaseGuards(action, t)
		s.show(SituationWait, "")
		return ErrInteraction
	}

	var authErr error
	if s.neg.FirstTime() {
		authErr = s.neg.CheckLoginState(ctx)
	}
	if authErr == nil && !s.neg.HasPermission(action.Scope()) {
		authErr = s.neg.RequestScope(ctx, action.Scope(), false)
	}
	if authErr != nil {
		s.setPending(action, t, message)
		s.releaseGuards(action, t)
		s.show(loginSituation(authErr), "")
		return ErrInteraction
	}

	err := s.perform(ctx, action, t, message)
	s.releaseGuards(action, t)
	if err != nil {
		s.setPending(action, t, message)
		if action == ActionPost || action == ActionComment {
			s.show(SituationFacebook, message)
		} else {
			s.show(SituationFacebook, "")
		}
		return ErrInteraction
	}
	return nil
}

// resolve validates the interaction and turns its key into the Graph object
// id plus any indexes needed later. It also takes the like-family guard;
// a second like on a target with one in flight is dropped here.
func (s *Session) resolve(action Action, key, message string) (target, bool) {
	t := target{key: key, replayKey: key, feedIndex: -1, commentIndex: -1}

	switch {
	case action.isPostLike():
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(s.feed) {
			return t, false
		}
		if s.feed[idx].Liking {
			return t, false
		}
		s.feed[idx].Liking = true
		t.feedIndex = idx
		t.key = s.feed[idx].ID
	case action == ActionPost, action == ActionComment:
		if message == "" {
			return t, false
		}
	case action == ActionDeletePost:
	}

	switch {
	case action.isRSVP(), action == ActionPost:
		t.key = s.eventID
		t.replayKey = t.key
	case action == ActionComment, action == ActionDeletePost:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(s.feed) {
			return t, false
		}
		t.feedIndex = idx
		t.key = s.feed[idx].ID
	case action.isCommentTarget():
		ci, err := strconv.Atoi(message)
		if err != nil || ci < 0 {
			return t, false
		}
		for i := range s.feed {
			if ci < len(s.feed[i].Comments) && s.feed[i].Comments[ci].ID == key {
				t.feedIndex = i
				break
			}
		}
		if t.feedIndex < 0 {
			return t, false
		}
		t.commentIndex = ci
		if action != ActionDeleteComment {
			com := &s.feed[t.feedIndex].Comments[ci]
			if com.Liking {
				return t, false
			}
			com.Liking = true
		}
	}
	return t, true
}

// releaseGuards drops the like-family in-flight guard, on every outcome.
func (s *Session) releaseGuards(action Action, t target) {
	if !action.likeFamily() || t.feedIndex < 0 || t.feedIndex >= len(s.feed) {
		return
	}
	if action.isPostLike() {
		s.feed[t.feedIndex].Liking = false
	} else if t.commentIndex >= 0 && t.commentIndex < len(s.feed[t.feedIndex].Comments) {
		s.feed[t.feedIndex].Comments[t.commentIndex].Liking = false
	}
}

// setPending captures the original triple so try-again can replay it. For
// index-keyed actions the stored key is the feed index the visitor passed,
// so replay goes through resolution again against current state.
func (s *Session) setPending(action Action, t target, message string) {
	key := t.replayKey
	switch action {
	case ActionLike, ActionUnlike, ActionComment, ActionDeletePost:
		key = strconv.Itoa(t.feedIndex)
	}
	s.pending = pendingInteraction{action: action, key: key, message: message}
}

// perform runs the remote operation and, on success, applies the matching
// optimistic local mutation.
func (s *Session) perform(ctx context.Context, action Action, t target, message string) error {
	switch action {
	case ActionAttending, ActionMaybe, ActionDeclined:
		if err := s.api.RSVP(ctx, t.key, action.String()); err != nil {
			return err
		}
		switch action {
		case ActionAttending:
			s.rsvpStatus = "Going"
		case ActionMaybe:
			s.rsvpStatus = "Maybe"
		case ActionDeclined:
			s.rsvpStatus = "Declined"
		}
	case ActionPost:
		post, err := s.api.Post(ctx, t.key, message)
		if err != nil {
			return err
		}
		st := processor.ProcessStatus(*post, s.now())
		st.AppPosted = true
		s.feed = append([]model.Status{st}, s.feed...)
	case ActionComment:
		com, err := s.api.Comment(ctx, t.key, message)
		if err != nil {
			return err
		}
		s.revealHeldReplies(t.feedIndex)
		c := processor.ProcessComment(*com, s.now())
		c.AppPosted = true
		s.feed[t.feedIndex].Comments = append(s.feed[t.feedIndex].Comments, c)
	case ActionLike:
		if err := s.api.Like(ctx, t.key); err != nil {
			return err
		}
		s.feed[t.feedIndex].NumberLikes++
		s.feed[t.feedIndex].UserLiked = true
	case ActionUnlike:
		if err := s.api.Unlike(ctx, t.key); err != nil {
			return err
		}
		s.feed[t.feedIndex].NumberLikes--
		s.feed[t.feedIndex].UserLiked = false
	case ActionLikeComment:
		if err := s.api.Like(ctx, t.key); err != nil {
			return err
		}
		com := &s.feed[t.feedIndex].Comments[t.commentIndex]
		com.NumberLikes++
		com.UserLiked = true
	case ActionUnlikeComment:
		if err := s.api.Unlike(ctx, t.key); err != nil {
			return err
		}
		com := &s.feed[t.feedIndex].Comments[t.commentIndex]
		com.NumberLikes--
		com.UserLiked = false
	case ActionDeletePost:
		if err := s.api.Delete(ctx, t.key); err != nil {
			return err
		}
		s.feed = append(s.feed[:t.feedIndex], s.feed[t.feedIndex+1:]...)
	case ActionDeleteComment:
		if err := s.api.Delete(ctx, t.key); err != nil {
			return err
		}
		comments := s.feed[t.feedIndex].Comments
		s.feed[t.feedIndex].Comments = append(comments[:t.commentIndex], comments[t.commentIndex+1:]...)
	}
	return nil
}
