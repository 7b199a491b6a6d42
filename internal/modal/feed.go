package modal

import (
	"context"
	"log"

	"fbcal_workspace/configs"
	"fbcal_workspace/internal/cursor"
	"fbcal_workspace/internal/graph"
	"fbcal_workspace/internal/processor"
)

const (
	morePostsLabel   = "Show more posts"
	morePostsFailed  = "Failed to get more posts; Try again"
	moreRepliesLabel = "Show more replies"
	repliesFailed    = "Failed to get more replies; Try Again"
)

// mergeFeedPage folds a raw feed page into the session: message-less posts
// are dropped, the first VisibleWindow posts go into the visible feed and
// the rest are held back, order preserved.
func (s *Session) mergeFeedPage(page *graph.FeedPage) {
	if page.Paging != nil && page.Paging.Next != "" {
		s.nextFeed = page.Paging.Next
		s.moreFeedMsg = morePostsLabel
	} else {
		s.nextFeed = ""
		s.moreFeedMsg = ""
	}
	if page.Data == nil {
		s.nextFeed = ""
		s.moreFeedMsg = ""
		return
	}
	for i, raw := range page.Data {
		if raw.Message == "" {
			continue
		}
		st := processor.ProcessStatus(raw, s.now())
		if len(s.feed) < configs.VisibleWindow || i < configs.VisibleWindow {
			s.feed = append(s.feed, st)
		} else {
			s.extraFeed = append(s.extraFeed, st)
		}
	}
	if len(s.extraFeed) > 0 {
		s.moreFeedMsg = morePostsLabel
	}
}

// ShowMoreFeed reveals more posts: the held suffix first, then the next
// remote page if Facebook gave us one. A fetch already in flight drops the
// request.
func (s *Session) ShowMoreFeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()
	if s.gettingFeed {
		return nil
	}
	s.gettingFeed = true
	defer func() { s.gettingFeed = false }()

	if len(s.extraFeed) > 0 {
		s.feed = append(s.feed, s.extraFeed...)
		s.extraFeed = nil
		if s.nextFeed != "" {
			s.moreFeedMsg = morePostsLabel
		} else {
			s.moreFeedMsg = ""
		}
		return nil
	}
	if s.nextFeed == "" {
		s.moreFeedMsg = ""
		return nil
	}

	paging, ok := cursor.Extract(s.nextFeed, true)
	if !ok {
		log.Printf("modal: unparseable feed paging url for event %s", s.eventID)
		s.nextFeed = ""
		s.moreFeedMsg = ""
		return nil
	}
	page, err := s.api.Feed(ctx, s.eventID, paging)
	if err != nil {
		s.moreFeedMsg = morePostsFailed
		return err
	}
	s.mergeFeedPage(page)
	return nil
}

// revealHeldReplies promotes a post's held comments into the visible
// window, no remote fetch.
func (s *Session) revealHeldReplies(index int) {
	st := &s.feed[index]
	if len(st.ExtraComments) == 0 {
		return
	}
	st.Comments = append(st.Comments, st.ExtraComments...)
	st.ExtraComments = nil
	if st.More != "" {
		st.RepliesMessage = moreRepliesLabel
	} else {
		st.RepliesMessage = ""
	}
}

// ShowMoreReplies reveals more comments on one post, same policy as
// ShowMoreFeed but keyed by the post's own guard and paging token.
func (s *Session) ShowMoreReplies(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()
	if index < 0 || index >= len(s.feed) {
		return ErrRejected
	}
	st := &s.feed[index]
	if st.GettingReplies {
		return nil
	}
	st.GettingReplies = true
	defer func() { st.GettingReplies = false }()

	if len(st.ExtraComments) > 0 {
		s.revealHeldReplies(index)
		return nil
	}
	if st.More == "" {
		st.RepliesMessage = ""
		return nil
	}

	paging, ok := cursor.Extract(st.More, false)
	if !ok {
		log.Printf("modal: unparseable comment paging url on post %s", st.ID)
		st.More = ""
		st.RepliesMessage = ""
		return nil
	}
	page, err := s.api.Comments(ctx, paging.ObjectID, paging)
	if err != nil {
		st.RepliesMessage = repliesFailed
		return err
	}
	processor.ProcessAllComments(st, page, s.now())
	return nil
}
