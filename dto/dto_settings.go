package dto

import "fbcal_workspace/model"

type SaveSettingsReq struct {
	Settings model.Settings     `json:"settings"`
	Events   []model.SavedEvent `json:"events"`
}

type SaveAccessTokenReq struct {
	AccessToken string `json:"access_token"`
}

// WidgetSettingsResp is the GetSettingsWidget payload. Active is false when
// the owner has not connected a Facebook account yet, in which case the
// widget renders from defaults.
type WidgetSettingsResp struct {
	Settings    model.Settings `json:"settings"`
	FBEventData []FBEventData  `json:"fb_event_data"`
	Active      bool           `json:"active"`
}

// FBEventData is the per-saved-event slice of data the widget calendar
// needs to place an event.
type FBEventData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	Location  string `json:"location,omitempty"`
}

// SettingsPanelResp is the GetSettingsSettings payload.
type SettingsPanelResp struct {
	Settings model.Settings     `json:"settings"`
	Events   []model.SavedEvent `json:"events"`
	Active   bool               `json:"active"`
	Name     string             `json:"name"`
	UserID   string             `json:"user_id"`
}
