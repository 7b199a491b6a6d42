package model

// Settings is the owner-editable design and behavior blob saved from the
// settings panel. Widths and corner radii are kept as strings the way the
// panel sends them.
type Settings struct {
	Title            string `json:"title" bson:"title"`
	Description      string `json:"description" bson:"description"`
	View             string `json:"view" bson:"view"`
	Commenting       bool   `json:"commenting" bson:"commenting"`
	HostedBy         bool   `json:"hostedBy" bson:"hosted_by"`
	Corners          string `json:"corners" bson:"corners"`
	BorderWidth      string `json:"borderWidth" bson:"border_width"`
	ModalCorners     string `json:"modalCorners" bson:"modal_corners"`
	ModalBorderWidth string `json:"modalBorderWidth" bson:"modal_border_width"`
}

// DefaultSettings mirrors the defaults the panel starts from.
func DefaultSettings() Settings {
	return Settings{
		Title:            "This is my title.",
		Description:      "This is my description.",
		View:             "Month",
		Commenting:       true,
		HostedBy:         true,
		Corners:          "25",
		BorderWidth:      "5",
		ModalCorners:     "0",
		ModalBorderWidth: "3",
	}
}

// AccessTokenData is the long-term token record kept per widget user after
// the short-term token exchange.
type AccessTokenData struct {
	AccessToken string `json:"access_token" bson:"access_token"`
	UserID      string `json:"user_id" bson:"user_id"`
	ExpiresIn   int64  `json:"expires_in" bson:"expires_in"`
}

// WidgetUser is one installed widget instance. The (comp id, instance id)
// pair is the primary key; Settings, Events and AccessToken are each
// optional until the owner saves them.
type WidgetUser struct {
	CompID      string           `json:"compId" bson:"comp_id"`
	InstanceID  string           `json:"instanceId" bson:"instance_id"`
	Settings    *Settings        `json:"settings,omitempty" bson:"settings,omitempty"`
	Events      []SavedEvent     `json:"events,omitempty" bson:"events,omitempty"`
	AccessToken *AccessTokenData `json:"-" bson:"access_token_data,omitempty"`
}
