package modal

import "context"

// Retry is the uniform try-again entry point behind the message modal's
// button. It branches on the situation that raised the modal and replays
// the captured interaction; the pending triple is whatever failed last
// (last write wins).
func (s *Session) Retry(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.touch()

	situation := s.situation
	s.postError = false
	s.userPost = ""
	s.message.Title = solvingTitle
	s.message.Body = solvingBody
	s.message.PermissionError = false

	switch situation {
	case SituationDeclinedPermission:
		return s.retryDeniedPermission(ctx)
	case SituationLoad:
		s.hide()
		return ErrReload
	case SituationWait:
		if s.pending.share {
			s.hide()
			s.sleep(s.retryDelay)
			s.shareLocked()
			return nil
		}
		s.sleep(s.retryDelay)
		return s.replay(ctx)
	default:
		return s.replay(ctx)
	}
}

// retryDeniedPermission re-asks for the scope the visitor refused. Facebook
// silently ignores a plain re-prompt for a declined scope, so this request
// carries the rerequest flag; on success the original interaction replays.
func (s *Session) retryDeniedPermission(ctx context.Context) error {
	err := s.neg.RequestScope(ctx, s.pending.action.Scope(), true)
	if err != nil {
		s.hide()
		s.sleep(s.followupDelay)
		s.show(loginSituation(err), "")
		return ErrInteraction
	}
	return s.replay(ctx)
}

// replay re-dispatches the captured triple. Success flips the modal body to
// a transient confirmation that auto-dismisses; failure leaves the fresh
// modal the dispatcher just raised.
func (s *Session) replay(ctx context.Context) error {
	err := s.interactLocked(ctx, s.pending.action, s.pending.key, s.pending.message)
	if err != nil {
		return err
	}
	s.situation = SituationIdle
	s.message.Body = "Success!"
	s.after(s.retryDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.disposed || s.situation != SituationIdle {
			return
		}
		s.hide()
	})
	return nil
}
