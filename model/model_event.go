package model

// Event is the basic event data shown in the modal header. It is loaded once
// per modal session and stays fixed except for the guest stats, which can be
// refreshed independently.
type Event struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Owner              string `json:"owner"`
	OwnerID            string `json:"ownerId"`
	Description        string `json:"description,omitempty"`
	DisplayDescription bool   `json:"displayDescription"`
	ShortTime          string `json:"shortTime"`
	LongTime           string `json:"longTime,omitempty"`
	Location           string `json:"location"`
	Venue              string `json:"venue,omitempty"`
	Cover              *Cover `json:"cover,omitempty"`
}

// Cover is the event cover photo plus the offsets Facebook positions it with.
type Cover struct {
	Source  string  `json:"source"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// GuestStats holds the formatted guest counters (3-character display form,
// e.g. "1.2K").
type GuestStats struct {
	Attending  string `json:"attendingCount"`
	Unsure     string `json:"unsureCount"`
	NotReplied string `json:"notRepliedCount"`
}

// SavedEvent is one entry of the owner's checked-event list from the
// settings panel. Only checked events may be opened in the modal.
type SavedEvent struct {
	EventID string `json:"eventId" bson:"event_id"`
	Name    string `json:"name" bson:"name"`
}
