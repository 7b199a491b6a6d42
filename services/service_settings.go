package services

import (
	"context"
	"errors"
	"log"

	"fbcal_workspace/database"
	"fbcal_workspace/dto"
	"fbcal_workspace/internal/graph"
	repo "fbcal_workspace/internal/repository"
	"fbcal_workspace/model"
)

var (
	// ErrForbidden means the caller asked for an event the owner never
	// checked in the settings panel.
	ErrForbidden = errors.New("event not in saved list")

	// ErrNotConnected means no Facebook account is linked to this widget.
	ErrNotConnected = errors.New("facebook account not connected")
)

// Service wires the widget's read/write flows: settings persistence, token
// exchange and the Graph fetches done on the owner's behalf.
type Service struct {
	Repo  repo.WidgetUserRepository
	Graph *graph.Client
	Cfg   database.Config
}

// userAPI binds a Graph API to the stored long-term token; ok is false when
// the widget has no connected account.
func (s *Service) userAPI(user *model.WidgetUser) (graph.API, bool) {
	if user == nil || user.AccessToken == nil || user.AccessToken.AccessToken == "" {
		return graph.API{}, false
	}
	return graph.API{C: s.Graph.WithToken(user.AccessToken.AccessToken)}, true
}

func settingsOf(user *model.WidgetUser) model.Settings {
	if user != nil && user.Settings != nil {
		return *user.Settings
	}
	return model.DefaultSettings()
}

// WidgetSettings is the widget's page-load payload. Anything going wrong
// here degrades to an inactive default payload, the calendar still renders.
func (s *Service) WidgetSettings(ctx context.Context, compID, instanceID string) dto.WidgetSettingsResp {
	resp := dto.WidgetSettingsResp{
		Settings:    model.DefaultSettings(),
		FBEventData: []dto.FBEventData{},
	}
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		log.Printf("services: widget settings lookup failed for %s: %v", compID, err)
		return resp
	}
	resp.Settings = settingsOf(user)

	api, ok := s.userAPI(user)
	if !ok {
		return resp
	}
	resp.Active = true
	for _, saved := range user.Events {
		ev, err := api.Event(ctx, saved.EventID, "id,name,start_time,end_time,location")
		if err != nil {
			log.Printf("services: event %s fetch failed: %v", saved.EventID, err)
			continue
		}
		resp.FBEventData = append(resp.FBEventData, dto.FBEventData{
			ID:        ev.ID,
			Name:      ev.Name,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Location:  ev.Location,
		})
	}
	return resp
}

// PanelSettings is the settings-panel payload, owner only.
func (s *Service) PanelSettings(ctx context.Context, compID, instanceID string) dto.SettingsPanelResp {
	resp := dto.SettingsPanelResp{
		Settings: model.DefaultSettings(),
		Events:   []model.SavedEvent{},
	}
	user, err := s.Repo.Get(ctx, compID, instanceID)
	if err != nil {
		log.Printf("services: panel settings lookup failed for %s: %v", compID, err)
		return resp
	}
	resp.Settings = settingsOf(user)
	if user != nil && user.Events != nil {
		resp.Events = user.Events
	}

	api, ok := s.userAPI(user)
	if !ok {
		return resp
	}
	resp.Active = true
	resp.UserID = user.AccessToken.UserID
	if me, err := api.Me(ctx); err == nil {
		resp.Name = me.Name
	}
	return resp
}

func (s *Service) SaveSettings(ctx context.Context, compID, instanceID string, req dto.SaveSettingsReq) error {
	return s.Repo.SaveSettings(ctx, compID, instanceID, req.Settings, req.Events)
}

// SaveAccessToken swaps the panel's short-term token for a long-term one and
// stores it with the id of the account it belongs to.
func (s *Service) SaveAccessToken(ctx context.Context, compID, instanceID, shortToken string) error {
	api := graph.API{C: s.Graph}
	tok, err := api.ExchangeToken(ctx, s.Cfg.FBAppID, s.Cfg.FBAppSecret, shortToken)
	if err != nil {
		return err
	}
	me, err := graph.API{C: s.Graph.WithToken(tok.AccessToken)}.Me(ctx)
	if err != nil {
		return err
	}
	return s.Repo.SaveAccessToken(ctx, compID, instanceID, model.AccessTokenData{
		AccessToken: tok.AccessToken,
		UserID:      me.ID,
		ExpiresIn:   tok.ExpiresIn,
	})
}

// Logout drops the token and saved events; settings survive so the widget
// keeps its look.
func (s *Service) Logout(ctx context.Context, compID, instanceID string) error {
	return s.Repo.ClearUserData(ctx, compID, instanceID)
}
