package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"fbcal_workspace/configs"
	"fbcal_workspace/dto"
	"fbcal_workspace/internal/cursor"
	"fbcal_workspace/internal/graph"
	"fbcal_workspace/internal/processor"
	"fbcal_workspace/model"
)

// allEventsPageCap bounds how many pages AllEvents will chase. Facebook
// paging URLs are followed until exhausted or the cap is hit.
const allEventsPageCap = 10

// AllEvents lists the events the connected account created within the
// lookback window, for the settings panel's checklist.
func (s *Service) AllEvents(ctx context.Context, compID, instanceID string) ([]dto.FBEventData, error) {
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		return nil, err
	}
	api, ok := s.userAPI(user)
	if !ok {
		return nil, ErrNotConnected
	}

	since := time.Now().Add(-configs.EventLookback).Unix()
	out := []dto.FBEventData{}
	paging := cursor.Paging{}
	for page := 0; page < allEventsPageCap; page++ {
		events, err := api.EventsCreated(ctx, since, paging)
		if err != nil {
			return nil, err
		}
		for _, ev := range events.Data {
			out = append(out, dto.FBEventData{
				ID:        ev.ID,
				Name:      ev.Name,
				StartTime: ev.StartTime,
				EndTime:   ev.EndTime,
				Location:  ev.Location,
			})
		}
		if events.Paging == nil || events.Paging.Next == "" {
			break
		}
		next, ok := cursor.Extract(events.Paging.Next, true)
		if !ok {
			log.Printf("services: unparseable events paging url for %s", compID)
			break
		}
		paging = next
	}
	return out, nil
}

// ModalEventResp bundles whichever section GetModalEvent was asked for.
type ModalEventResp struct {
	Settings *model.Settings   `json:"settings,omitempty"`
	Event    *model.Event      `json:"event,omitempty"`
	Cover    *model.Cover      `json:"cover,omitempty"`
	Stats    *model.GuestStats `json:"stats,omitempty"`
	Feed     *graph.FeedPage   `json:"feed,omitempty"`
}

// ModalEvent serves one section of the modal's data. desiredData "all" is
// the opening fetch and is only allowed for events on the owner's saved
// list.
func (s *Service) ModalEvent(ctx context.Context, compID, instanceID, eventID, desiredData string) (*ModalEventResp, error) {
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		return nil, err
	}
	api, ok := s.userAPI(user)
	if !ok {
		return nil, ErrNotConnected
	}

	resp := &ModalEventResp{}
	switch desiredData {
	case "all":
		if !eventSaved(user, eventID) {
			return nil, ErrForbidden
		}
		ev, err := api.Event(ctx, eventID, "")
		if err != nil {
			return nil, err
		}
		settings := settingsOf(user)
		resp.Settings = &settings
		resp.Event = processor.ProcessEvent(ev)
	case "cover":
		ev, err := api.Event(ctx, eventID, "cover")
		if err != nil {
			return nil, err
		}
		if ev.Cover != nil && ev.Cover.Source != "" {
			resp.Cover = &model.Cover{
				Source:  ev.Cover.Source,
				OffsetX: ev.Cover.OffsetX,
				OffsetY: ev.Cover.OffsetY,
			}
		}
	case "guests":
		guests, err := api.Guests(ctx, eventID)
		if err != nil {
			return nil, err
		}
		resp.Stats = processor.ProcessGuests(guests)
	case "feed":
		feed, err := api.Feed(ctx, eventID, cursor.Paging{})
		if err != nil {
			return nil, err
		}
		resp.Feed = feed
	default:
		return nil, fmt.Errorf("unknown desired_data %q", desiredData)
	}
	return resp, nil
}

// ModalFeedResp carries one pagination fetch.
type ModalFeedResp struct {
	Feed     *graph.FeedPage    `json:"feed,omitempty"`
	Comments *graph.CommentPage `json:"comments,omitempty"`
}

// ModalFeed serves feed/comment pagination for the modal: feed pages are
// keyed by the event id, comment pages by the object id the cursor parser
// pulled out of the paging URL.
func (s *Service) ModalFeed(ctx context.Context, compID, instanceID, objectID, desiredData string, paging cursor.Paging) (*ModalFeedResp, error) {
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		return nil, err
	}
	api, ok := s.userAPI(user)
	if !ok {
		return nil, ErrNotConnected
	}

	resp := &ModalFeedResp{}
	switch desiredData {
	case "feed":
		page, err := api.Feed(ctx, objectID, paging)
		if err != nil {
			return nil, err
		}
		resp.Feed = page
	case "comments":
		page, err := api.Comments(ctx, objectID, paging)
		if err != nil {
			return nil, err
		}
		resp.Comments = page
	default:
		return nil, fmt.Errorf("unknown desired_data %q", desiredData)
	}
	return resp, nil
}

func eventSaved(user *model.WidgetUser, eventID string) bool {
	if user == nil {
		return false
	}
	for _, saved := range user.Events {
		if saved.EventID == eventID {
			return true
		}
	}
	return false
}
