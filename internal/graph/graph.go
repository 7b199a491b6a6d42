// Package graph talks to the Facebook Graph API. Every call resolves to
// either a data payload or an *Error, never both.
package graph

import (
	"context"
	"fmt"
	"net/url"
)

// Caller is the single RPC-like entry point of the Graph API. out is filled
// from the response body on success.
type Caller interface {
	Call(ctx context.Context, method, path string, params url.Values, out any) error
}

// Error is the error object Facebook returns in place of data.
type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("graph: %s (%s, code %d)", e.Message, e.Type, e.Code)
}

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Permission struct {
	Permission string `json:"permission"`
	Status     string `json:"status"`
}

type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

type Paging struct {
	Next    string   `json:"next"`
	Cursors *Cursors `json:"cursors"`
}

type objectRef struct {
	ID string `json:"id"`
}

type objectList struct {
	Data []objectRef `json:"data"`
}

func (l *objectList) count() int {
	if l == nil {
		return 0
	}
	return len(l.Data)
}

type action struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Post is a raw feed status as the Graph API returns it.
type Post struct {
	ID          string       `json:"id"`
	From        Author       `json:"from"`
	Message     string       `json:"message"`
	Picture     string       `json:"picture"`
	Link        string       `json:"link"`
	Name        string       `json:"name"`
	Caption     string       `json:"caption"`
	Description string       `json:"description"`
	CreatedTime string       `json:"created_time"`
	Actions     []action     `json:"actions"`
	Likes       *objectList  `json:"likes"`
	SharedPosts *objectList  `json:"sharedposts"`
	Comments    *CommentPage `json:"comments"`
}

// LikeCount and ShareCount read the embedded summary lists.
func (p *Post) LikeCount() int  { return p.Likes.count() }
func (p *Post) ShareCount() int { return p.SharedPosts.count() }

// Comment is a raw comment object.
type Comment struct {
	ID          string `json:"id"`
	From        Author `json:"from"`
	Message     string `json:"message"`
	LikeCount   int    `json:"like_count"`
	CanRemove   bool   `json:"can_remove"`
	CreatedTime string `json:"created_time"`
}

type FeedPage struct {
	Data   []Post  `json:"data"`
	Paging *Paging `json:"paging"`
}

type CommentPage struct {
	Data   []Comment `json:"data"`
	Paging *Paging   `json:"paging"`
}

type Venue struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Cover struct {
	Source  string  `json:"source"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// EventData is a raw event object; which fields are filled depends on the
// requested field list.
type EventData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Owner       Author `json:"owner"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Venue       *Venue `json:"venue"`
	Cover       *Cover `json:"cover"`
}

type EventPage struct {
	Data   []EventData `json:"data"`
	Paging *Paging     `json:"paging"`
}

// GuestSummary is one row of the guest-statistics query.
type GuestSummary struct {
	AttendingCount  int `json:"attending_count"`
	UnsureCount     int `json:"unsure_count"`
	NotRepliedCount int `json:"not_replied_count"`
}

type GuestPage struct {
	Data []GuestSummary `json:"data"`
}

// TokenData is the long-term token the oauth exchange returns.
type TokenData struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
