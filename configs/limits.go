package configs

import "time"

// Visible-window policy: only the first VisibleWindow posts/comments are
// shown, the rest are held until the visitor asks for more.
const VisibleWindow = 5

const (
	// GraphTimeout bounds every outbound Graph API call.
	GraphTimeout = 10 * time.Second

	// FollowupModalDelay lets the previous message modal visually dismiss
	// before the next one is raised.
	FollowupModalDelay = 1 * time.Second

	// RetryWaitDelay is how long a "please wait" retry waits before it
	// re-dispatches, and how long the transient success message stays up.
	RetryWaitDelay = 1500 * time.Millisecond

	// SessionTTL expires idle modal sessions.
	SessionTTL = 30 * time.Minute
)

// EventLookback is how far back GetAllEvents searches for events created by
// the connected user.
const EventLookback = 90 * 24 * time.Hour
