package model

// Status is one post of the event feed, processed into display form.
// Comments carries the visible window (max 5 until the held suffix is
// drained); ExtraComments is the held suffix revealed on demand.
type Status struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Message     string `json:"message"`
	Picture     string `json:"picture,omitempty"`
	Link        string `json:"link,omitempty"`
	LinkName    string `json:"linkName,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`

	NumberLikes  int  `json:"numberLikes"`
	NumberShares int  `json:"numberShares"`
	UserLiked    bool `json:"userLiked"`
	AppPosted    bool `json:"appPosted"`

	Comments      []Comment `json:"comments"`
	ExtraComments []Comment `json:"-"`

	// More is the Graph URL of the next comment page, empty when none.
	More           string `json:"-"`
	RepliesMessage string `json:"repliesMessage"`

	// In-flight guards. Liking blocks a second like call on the same post
	// before the first settles; GettingReplies does the same for comment
	// pagination.
	Liking         bool `json:"-"`
	GettingReplies bool `json:"-"`
}

// Comment is a single processed comment on a Status.
type Comment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Message     string `json:"message,omitempty"`
	Time        string `json:"time"`
	NumberLikes int    `json:"numberLikes"`
	CanRemove   bool   `json:"canRemove"`
	UserLiked   bool   `json:"userLiked"`
	AppPosted   bool   `json:"appPosted"`

	Liking bool `json:"-"`
}
