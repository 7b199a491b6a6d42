// Package modal holds the server-side state of one event-detail modal
// session: the loaded event sections, the visible feed window, the granted
// permissions, and the last failed interaction for the try-again flow.
package modal

import (
	"context"
	"errors"
	"sync"
	"time"

	"fbcal_workspace/configs"
	"fbcal_workspace/dto"
	"fbcal_workspace/internal/cursor"
	"fbcal_workspace/internal/fblogin"
	"fbcal_workspace/internal/graph"
	"fbcal_workspace/internal/processor"
	"fbcal_workspace/model"
)

var (
	// ErrDisposed is returned by every mutation on a torn-down session.
	ErrDisposed = errors.New("session disposed")

	// ErrRejected means the interaction failed validation and was dropped
	// silently, no modal is raised.
	ErrRejected = errors.New("interaction rejected")

	// ErrInteraction means the interaction failed and the session's message
	// modal now explains why.
	ErrInteraction = errors.New("interaction failed")

	// ErrReload tells the caller the session is beyond recovery and the
	// modal must be reopened.
	ErrReload = errors.New("session must reload")
)

// pendingInteraction is the last failed interaction's original parameter
// triple, overwritten on every new failure.
type pendingInteraction struct {
	action  Action
	key     string
	message string
	share   bool
}

// Config wires a new session. Ready reports whether the Facebook side is
// usable yet; a nil Ready means always ready.
type Config struct {
	ID       string
	EventID  string
	Settings model.Settings
	Caller   graph.Caller
	Conn     fblogin.Connector
	Ready    func() bool
	Now      func() time.Time
}

// Session is the exclusive owner of one visitor's modal state. All exported
// methods serialize on the session mutex, so handlers may call them from any
// goroutine; within one call the permission step strictly precedes the
// remote operation, which strictly precedes the local mutation.
type Session struct {
	mu sync.Mutex

	id       string
	eventID  string
	settings model.Settings

	api   graph.API
	neg   *fblogin.Negotiator
	ready func() bool
	now   func() time.Time

	event       *model.Event
	stats       *model.GuestStats
	guestFailed bool
	feedFailed  bool

	feed        []model.Status
	extraFeed   []model.Status
	nextFeed    string
	gettingFeed bool
	moreFeedMsg string

	rsvpStatus string
	shareLink  string

	situation Situation
	message   dto.ModalMessage
	postError bool
	userPost  string
	pending   pendingInteraction

	disposed  bool
	lastTouch time.Time

	// Delays of the retry flow, swapped out by tests.
	followupDelay time.Duration
	retryDelay    time.Duration
	sleep         func(time.Duration)
	after         func(time.Duration, func())
}

func NewSession(cfg Config) *Session {
	s := &Session{
		id:            cfg.ID,
		eventID:       cfg.EventID,
		settings:      cfg.Settings,
		api:           graph.API{C: cfg.Caller},
		neg:           fblogin.NewNegotiator(cfg.Conn),
		ready:         cfg.Ready,
		now:           cfg.Now,
		rsvpStatus:    "RSVP",
		feed:          []model.Status{},
		followupDelay: configs.FollowupModalDelay,
		retryDelay:    configs.RetryWaitDelay,
		sleep:         time.Sleep,
	}
	if s.ready == nil {
		s.ready = func() bool { return true }
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.after = func(d time.Duration, f func()) {
		time.AfterFunc(d, f)
	}
	s.lastTouch = s.now()
	return s
}

func (s *Session) ID() string { return s.id }

// Dispose tears the session down; dangling continuations see the flag and
// leave the state alone.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
}

func (s *Session) idleSince(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouch) > ttl
}

func (s *Session) touch() {
	s.lastTouch = s.now()
}

// LoadSections fetches the four detail sections. Each section fails on its
// own: a dead guest query still leaves the event header and feed usable.
func (s *Session) LoadSections(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()

	ev, err := s.api.Event(ctx, s.eventID, "")
	if err != nil {
		s.show(SituationLoad, "")
		return ErrReload
	}
	s.event = processor.ProcessEvent(ev)

	if cover, err := s.api.Event(ctx, s.eventID, "cover"); err == nil {
		if cover.Cover != nil && cover.Cover.Source != "" {
			s.event.Cover = &model.Cover{
				Source:  cover.Cover.Source,
				OffsetX: cover.Cover.OffsetX,
				OffsetY: cover.Cover.OffsetY,
			}
		}
	}

	if guests, err := s.api.Guests(ctx, s.eventID); err != nil {
		s.guestFailed = true
	} else if s.stats = processor.ProcessGuests(guests); s.stats == nil {
		s.guestFailed = true
	}

	if page, err := s.api.Feed(ctx, s.eventID, cursor.Paging{}); err != nil {
		s.feedFailed = true
	} else {
		s.mergeFeedPage(page)
	}

	if status, err := s.api.RSVPStatus(ctx, s.eventID); err == nil && status != "" {
		s.rsvpStatus = rsvpLabel(status)
	}
	return nil
}

func rsvpLabel(status string) string {
	switch status {
	case "attending":
		return "Going"
	case "unsure", "maybe":
		return "Maybe"
	case "declined":
		return "Declined"
	default:
		return "RSVP"
	}
}

// Snapshot copies the current view-model state. The feed copy is deep:
// handlers marshal the snapshot outside the session lock, so it must not
// alias comment slices a later interaction may splice.
func (s *Session) Snapshot() dto.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	feed := make([]model.Status, len(s.feed))
	copy(feed, s.feed)
	for i := range feed {
		comments := make([]model.Comment, len(feed[i].Comments))
		copy(comments, feed[i].Comments)
		feed[i].Comments = comments
		feed[i].ExtraComments = nil
	}
	return dto.SessionSnapshot{
		SessionID:       s.id,
		Settings:        s.settings,
		Event:           s.event,
		Stats:           s.stats,
		GuestFailed:     s.guestFailed,
		FeedFailed:      s.feedFailed,
		Feed:            feed,
		MoreFeedMessage: s.moreFeedMsg,
		RSVPStatus:      s.rsvpStatus,
		Message:         s.message,
		PostError:       s.postError,
		UserPost:        s.userPost,
		ShareLink:       s.shareLink,
	}
}

// show raises the message modal for the situation; userPost keeps the text
// the visitor tried to publish so they can copy it out of the modal.
func (s *Session) show(situation Situation, userPost string) {
	s.situation = situation
	s.message = ComposeMessage(situation)
	s.postError = userPost != ""
	s.userPost = userPost
	s.shareLink = ""
	if situation == SituationLink {
		s.shareLink = "https://www.facebook.com/events/" + s.eventID
	}
}

// hide dismisses the message modal without touching the pending interaction.
func (s *Session) hide() {
	s.situation = SituationIdle
	s.message = dto.ModalMessage{}
	s.postError = false
	s.userPost = ""
	s.shareLink = ""
}

// ShareEvent starts the share flow. Sharing needs no permission and skips
// the dispatcher entirely; when Facebook is not ready yet it parks a share
// marker so the wait-modal retry can restart it.
func (s *Session) ShareEvent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()
	s.shareLocked()
	return nil
}

func (s *Session) shareLocked() {
	if s.ready() {
		s.show(SituationLink, "")
		return
	}
	s.pending = pendingInteraction{share: true}
	s.show(SituationWait, "")
}
