package modal

import (
	"errors"

	"fbcal_workspace/dto"
	"fbcal_workspace/internal/fblogin"
)

// Situation tags the reason the message modal is up. The zero value means
// no modal is showing.
type Situation string

const (
	SituationIdle               Situation = ""
	SituationWait               Situation = "wait"
	SituationDeclined           Situation = "declined"
	SituationNotLoggedIn        Situation = "not logged in"
	SituationDeclinedPermission Situation = "declined permission"
	SituationFacebook           Situation = "facebook"
	SituationFacebookLogin      Situation = "facebook login"
	SituationLoad               Situation = "load"
	SituationLink               Situation = "link"
)

const (
	errorTitle  = "Oh no!"
	errorBody   = "Something terrible happened. Please try again or reload the page."
	retryButton = "Try Again"

	waitTitle = "Please wait..."
	waitBody  = "We are still connecting to Facebook. Please wait a few seconds and then click try again."

	permissionTitle  = "Hello there!"
	permissionButton = "Grant Permission"
	declinedBody     = "We can't perform your request regarding this Facebook event unless you give us permission to."
	notLoggedInBody  = "We need your permission to fulfill your request regarding this Facebook event. If you're not logged in, you can't grant your permission."
	deniedScopeBody  = "You might be wondering why we need these permissions to fulfill your request."

	shareTitle = "Share"

	solvingTitle = "Trying again..."
	solvingBody  = "Giving our best effort!"
)

// ComposeMessage maps a situation to the content of the message modal shown
// on top of the event modal.
func ComposeMessage(situation Situation) dto.ModalMessage {
	var msg dto.ModalMessage
	switch situation {
	case SituationFacebook, SituationFacebookLogin, SituationLoad:
		msg.Title = errorTitle
		msg.Body = errorBody
		msg.Button = retryButton
	case SituationLink:
		msg.Title = shareTitle
		msg.ShowLink = true
	case SituationWait:
		msg.Title = waitTitle
		msg.Body = waitBody
		msg.Button = retryButton
	default:
		msg.PermissionError = true
		msg.Title = permissionTitle
		msg.Button = permissionButton
		switch situation {
		case SituationDeclinedPermission:
			msg.Body = deniedScopeBody
		case SituationDeclined:
			msg.Body = declinedBody
		case SituationNotLoggedIn:
			msg.Body = notLoggedInBody
		}
	}
	return msg
}

// loginSituation maps a negotiation failure to its modal situation. Anything
// outside the known taxonomy gets the generic login-failure modal.
func loginSituation(err error) Situation {
	switch {
	case errors.Is(err, fblogin.ErrDeclined):
		return SituationDeclined
	case errors.Is(err, fblogin.ErrNotLoggedIn):
		return SituationNotLoggedIn
	case errors.Is(err, fblogin.ErrDeclinedPermission):
		return SituationDeclinedPermission
	default:
		return SituationFacebookLogin
	}
}
