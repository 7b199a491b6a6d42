package dto

import "fbcal_workspace/model"

type OpenSessionReq struct {
	EventID string `json:"event_id"`
}

type InteractReq struct {
	Action  string `json:"action"`
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}

// ModalMessage is the current message-modal content, empty title when no
// modal is up.
type ModalMessage struct {
	Title           string `json:"messageTitle"`
	Body            string `json:"messageBody"`
	Button          string `json:"modalButton"`
	ShowLink        bool   `json:"showLink"`
	PermissionError bool   `json:"permissionError"`
}

// SessionSnapshot is the full view-model state of one modal session.
type SessionSnapshot struct {
	SessionID       string            `json:"session_id"`
	Settings        model.Settings    `json:"settings"`
	Event           *model.Event      `json:"event,omitempty"`
	Stats           *model.GuestStats `json:"stats,omitempty"`
	GuestFailed     bool              `json:"guestFailed"`
	FeedFailed      bool              `json:"feedFailed"`
	Feed            []model.Status    `json:"feed"`
	MoreFeedMessage string            `json:"moreFeedMessage"`
	RSVPStatus      string            `json:"rsvpStatus"`
	Message         ModalMessage      `json:"message"`
	PostError       bool              `json:"postError"`
	UserPost        string            `json:"userPost,omitempty"`
	ShareLink       string            `json:"shareLink,omitempty"`
}
