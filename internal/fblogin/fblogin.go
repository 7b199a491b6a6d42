// Package fblogin negotiates Facebook login state and OAuth scopes for one
// modal session. The granted set only ever grows; logout or session teardown
// is the reset.
package fblogin

import (
	"context"
	"errors"
)

// Permission scopes the widget cares about.
const (
	ScopeRSVP    = "rsvp_event"
	ScopePublish = "publish_actions"

	// DefaultScopes is the bundle requested on the session's first login.
	DefaultScopes = "public_profile, publish_actions, rsvp_event"
)

// Login states as the SDK reports them.
const (
	StatusConnected     = "connected"
	StatusNotAuthorized = "not_authorized"
	StatusUnknown       = "unknown"
)

var (
	ErrDeclined           = errors.New("declined")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrDeclinedPermission = errors.New("declined permission")
	ErrUnknown            = errors.New("unknown")
)

// Connector is the interactive boundary to the Facebook SDK. Login blocks on
// the visitor's consent dialog; rerequest flags the prompt as a re-ask for a
// scope the visitor declined before, without it Facebook silently no-ops.
type Connector interface {
	LoginStatus(ctx context.Context) (string, error)
	Login(ctx context.Context, scope string, rerequest bool) (string, error)
	Permissions(ctx context.Context) ([]string, error)
}

// Negotiator accumulates the scopes granted during one session.
type Negotiator struct {
	conn    Connector
	granted map[string]struct{}
	checked bool
}

func NewNegotiator(conn Connector) *Negotiator {
	return &Negotiator{conn: conn, granted: map[string]struct{}{}}
}

// FirstTime reports whether permissions have never been enumerated this
// session.
func (n *Negotiator) FirstTime() bool {
	return !n.checked
}

// HasPermission is a pure membership check, it never calls out.
func (n *Negotiator) HasPermission(scope string) bool {
	_, ok := n.granted[scope]
	return ok
}

func (n *Negotiator) refresh(ctx context.Context) error {
	perms, err := n.conn.Permissions(ctx)
	if err != nil {
		return ErrUnknown
	}
	for _, p := range perms {
		n.granted[p] = struct{}{}
	}
	n.checked = true
	return nil
}

// CheckLoginState resolves the visitor's login state, prompting a full login
// with the default scope bundle when there is no connected session, then
// folds the currently granted permissions into the session set.
func (n *Negotiator) CheckLoginState(ctx context.Context) error {
	status, err := n.conn.LoginStatus(ctx)
	if err != nil {
		return ErrUnknown
	}
	if status != StatusConnected {
		status, err = n.conn.Login(ctx, DefaultScopes, false)
		if err != nil {
			return ErrUnknown
		}
		switch status {
		case StatusConnected:
		case StatusNotAuthorized:
			// Logged into Facebook, refused the app.
			return ErrDeclined
		default:
			return ErrNotLoggedIn
		}
	}
	return n.refresh(ctx)
}

// RequestScope prompts for exactly one scope. It resolves only when the
// requested scope shows up granted afterwards; a successful login without
// the scope still fails as a declined permission.
func (n *Negotiator) RequestScope(ctx context.Context, scope string, isRetryAfterDecline bool) error {
	status, err := n.conn.Login(ctx, scope, isRetryAfterDecline)
	if err != nil {
		return ErrUnknown
	}
	switch status {
	case StatusConnected:
	case StatusNotAuthorized:
		return ErrDeclined
	default:
		return ErrNotLoggedIn
	}
	if err := n.refresh(ctx); err != nil {
		return err
	}
	if !n.HasPermission(scope) {
		return ErrDeclinedPermission
	}
	return nil
}
