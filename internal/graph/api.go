package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fbcal_workspace/internal/cursor"
)

const (
	eventFields = "id,name,owner,description,start_time,end_time,location,venue"
	postFields  = "id,from,message,picture,link,name,caption,description,created_time,actions,likes,sharedposts,comments"
)

// API wraps a Caller with the typed calls the widget needs.
type API struct {
	C Caller
}

// Me returns the id and name behind the bound access token.
func (a API) Me(ctx context.Context) (*Author, error) {
	var me Author
	if err := a.C.Call(ctx, http.MethodGet, "/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Permissions enumerates the permissions currently attached to the session.
func (a API) Permissions(ctx context.Context) ([]Permission, error) {
	var page struct {
		Data []Permission `json:"data"`
	}
	if err := a.C.Call(ctx, http.MethodGet, "/me/permissions", nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// RSVP sets the viewer's attendance on an event. action is one of
// attending, maybe, declined.
func (a API) RSVP(ctx context.Context, eventID, action string) error {
	return a.C.Call(ctx, http.MethodPost, "/"+eventID+"/"+action, nil, nil)
}

// RSVPStatus reads back the viewer's current attendance, "" when the viewer
// has not responded.
func (a API) RSVPStatus(ctx context.Context, eventID string) (string, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf(
		"SELECT rsvp_status FROM event_member WHERE eid = %s AND uid=me()", eventID))
	var resp struct {
		Data []struct {
			RSVPStatus string `json:"rsvp_status"`
		} `json:"data"`
	}
	if err := a.C.Call(ctx, http.MethodGet, "/fql", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].RSVPStatus, nil
}

// publish posts message on the given edge and fetches the created object id.
func (a API) publish(ctx context.Context, targetID, edge, message string) (string, error) {
	params := url.Values{}
	params.Set("message", message)
	var created struct {
		ID string `json:"id"`
	}
	if err := a.C.Call(ctx, http.MethodPost, "/"+targetID+"/"+edge, params, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// Post publishes a status to the event feed and returns the full object, so
// the caller can show it without re-fetching the feed.
func (a API) Post(ctx context.Context, eventID, message string) (*Post, error) {
	id, err := a.publish(ctx, eventID, "feed", message)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("fields", postFields)
	var post Post
	if err := a.C.Call(ctx, http.MethodGet, "/"+id, params, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Comment publishes a comment on a status and returns the full object.
func (a API) Comment(ctx context.Context, statusID, message string) (*Comment, error) {
	id, err := a.publish(ctx, statusID, "comments", message)
	if err != nil {
		return nil, err
	}
	var com Comment
	if err := a.C.Call(ctx, http.MethodGet, "/"+id, nil, &com); err != nil {
		return nil, err
	}
	return &com, nil
}

func (a API) Like(ctx context.Context, objectID string) error {
	return a.C.Call(ctx, http.MethodPost, "/"+objectID+"/likes", nil, nil)
}

func (a API) Unlike(ctx context.Context, objectID string) error {
	return a.C.Call(ctx, http.MethodDelete, "/"+objectID+"/likes", nil, nil)
}

func (a API) Delete(ctx context.Context, objectID string) error {
	return a.C.Call(ctx, http.MethodDelete, "/"+objectID, nil, nil)
}

// Event fetches one event; fields defaults to the basic detail set.
func (a API) Event(ctx context.Context, eventID, fields string) (*EventData, error) {
	if fields == "" {
		fields = eventFields
	}
	params := url.Values{}
	params.Set("fields", fields)
	var ev EventData
	if err := a.C.Call(ctx, http.MethodGet, "/"+eventID, params, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Guests queries the guest-statistics summary for an event.
func (a API) Guests(ctx context.Context, eventID string) (*GuestPage, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf(
		"SELECT attending_count, unsure_count, not_replied_count FROM event WHERE eid = %s", eventID))
	var page GuestPage
	if err := a.C.Call(ctx, http.MethodGet, "/fql", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func pagingParams(p cursor.Paging) url.Values {
	params := url.Values{}
	if p.After != "" {
		params.Set("after", p.After)
	} else if p.Until != "" {
		params.Set("until", p.Until)
	}
	return params
}

// Feed fetches a page of an event's feed.
func (a API) Feed(ctx context.Context, eventID string, p cursor.Paging) (*FeedPage, error) {
	params := pagingParams(p)
	params.Set("fields", postFields)
	var page FeedPage
	if err := a.C.Call(ctx, http.MethodGet, "/"+eventID+"/feed", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Comments fetches a page of comments on a status.
func (a API) Comments(ctx context.Context, statusID string, p cursor.Paging) (*CommentPage, error) {
	var page CommentPage
	if err := a.C.Call(ctx, http.MethodGet, "/"+statusID+"/comments", pagingParams(p), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// EventsCreated pages through events the viewer created since the given
// unix time.
func (a API) EventsCreated(ctx context.Context, since int64, p cursor.Paging) (*EventPage, error) {
	params := pagingParams(p)
	params.Set("since", fmt.Sprintf("%d", since))
	var page EventPage
	if err := a.C.Call(ctx, http.MethodGet, "/me/events/created", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExchangeToken swaps a short-term token for a long-term one.
func (a API) ExchangeToken(ctx context.Context, appID, appSecret, shortToken string) (*TokenData, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", appID)
	params.Set("client_secret", appSecret)
	params.Set("fb_exchange_token", shortToken)
	var tok TokenData
	if err := a.C.Call(ctx, http.MethodGet, "/oauth/access_token", params, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
