package fblogin

import (
	"context"

	"fbcal_workspace/internal/graph"
)

// TokenConnector backs a session with a long-term access token held server
// side. There is no dialog to show, so Login succeeds whenever the token
// still resolves a user; scope grants come from whatever the token carries.
type TokenConnector struct {
	api graph.API
}

func NewTokenConnector(c graph.Caller) *TokenConnector {
	return &TokenConnector{api: graph.API{C: c}}
}

func (t *TokenConnector) LoginStatus(ctx context.Context) (string, error) {
	if _, err := t.api.Me(ctx); err != nil {
		return StatusUnknown, nil
	}
	return StatusConnected, nil
}

func (t *TokenConnector) Login(ctx context.Context, scope string, rerequest bool) (string, error) {
	return t.LoginStatus(ctx)
}

func (t *TokenConnector) Permissions(ctx context.Context) ([]string, error) {
	perms, err := t.api.Permissions(ctx)
	if err != nil {
		return nil, err
	}
	granted := make([]string, 0, len(perms))
	for _, p := range perms {
		if p.Status == "granted" {
			granted = append(granted, p.Permission)
		}
	}
	return granted, nil
}
