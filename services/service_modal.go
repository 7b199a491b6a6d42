package services

import (
	"context"

	"fbcal_workspace/internal/fblogin"
	"fbcal_workspace/internal/modal"
)

// OpenModalSession starts a server-held modal session for one visitor. The
// event must be on the owner's saved list; the session's Facebook side is
// backed by the widget's long-term token.
func (s *Service) OpenModalSession(ctx context.Context, store *modal.Store, compID, instanceID, eventID string) (*modal.Session, error) {
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		return nil, err
	}
	if !eventSaved(user, eventID) {
		return nil, ErrForbidden
	}
	_, ok := s.userAPI(user)
	if !ok {
		return nil, ErrNotConnected
	}

	caller := s.Graph.WithToken(user.AccessToken.AccessToken)
	session := store.Open(modal.Config{
		EventID:  eventID,
		Settings: settingsOf(user),
		Caller:   caller,
		Conn:     fblogin.NewTokenConnector(caller),
	})
	if err := session.LoadSections(ctx); err != nil {
		return session, err
	}
	return session, nil
}
