package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcal_workspace/internal/graph"
	"fbcal_workspace/model"
	"fbcal_workspace/services"
)

type fakeRepo struct {
	user *model.WidgetUser
	err  error

	savedSettings *model.Settings
	savedEvents   []model.SavedEvent
	cleared       bool
}

func (f *fakeRepo) Get(ctx context.Context, compID, instanceID string) (*model.WidgetUser, error) {
	return f.user, f.err
}

func (f *fakeRepo) SaveSettings(ctx context.Context, compID, instanceID string, settings model.Settings, events []model.SavedEvent) error {
	f.savedSettings = &settings
	f.savedEvents = events
	return nil
}

func (f *fakeRepo) SaveAccessToken(ctx context.Context, compID, instanceID string, token model.AccessTokenData) error {
	return nil
}

func (f *fakeRepo) ClearUserData(ctx context.Context, compID, instanceID string) error {
	f.cleared = true
	return nil
}

func newService(repo *fakeRepo) *services.Service {
	return &services.Service{Repo: repo, Graph: graph.NewClient("https://graph.example.test")}
}

func TestWidgetSettingsFallsBackToDefaults(t *testing.T) {
	for name, repo := range map[string]*fakeRepo{
		"no row":       {},
		"lookup error": {err: errors.New("mongo down")},
	} {
		svc := newService(repo)
		resp := svc.WidgetSettings(context.Background(), "comp1", "inst1")
		assert.Equal(t, model.DefaultSettings(), resp.Settings, name)
		assert.False(t, resp.Active, name)
		assert.Empty(t, resp.FBEventData, name)
	}
}

func TestWidgetSettingsInactiveWithoutToken(t *testing.T) {
	repo := &fakeRepo{user: &model.WidgetUser{
		CompID:     "comp1",
		InstanceID: "inst1",
		Settings:   &model.Settings{Title: "My Events", View: "List", Commenting: true},
	}}
	svc := newService(repo)

	resp := svc.WidgetSettings(context.Background(), "comp1", "inst1")
	assert.Equal(t, "My Events", resp.Settings.Title)
	assert.False(t, resp.Active)
}

func TestPanelSettingsEchoesSavedEvents(t *testing.T) {
	repo := &fakeRepo{user: &model.WidgetUser{
		Settings: &model.Settings{Title: "Saved"},
		Events:   []model.SavedEvent{{EventID: "1", Name: "Party"}},
	}}
	svc := newService(repo)

	resp := svc.PanelSettings(context.Background(), "comp1", "inst1")
	assert.Equal(t, "Saved", resp.Settings.Title)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Party", resp.Events[0].Name)
	assert.False(t, resp.Active)
}

func TestAllEventsRequiresConnectedAccount(t *testing.T) {
	svc := newService(&fakeRepo{user: &model.WidgetUser{CompID: "comp1"}})
	_, err := svc.AllEvents(context.Background(), "comp1", "inst1")
	assert.ErrorIs(t, err, services.ErrNotConnected)
}

func TestModalEventAllRefusesUnsavedEvent(t *testing.T) {
	repo := &fakeRepo{user: &model.WidgetUser{
		Events:      []model.SavedEvent{{EventID: "1"}},
		AccessToken: &model.AccessTokenData{AccessToken: "tok", UserID: "u1"},
	}}
	svc := newService(repo)

	_, err := svc.ModalEvent(context.Background(), "comp1", "inst1", "999", "all")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestLogoutClearsUserData(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)
	require.NoError(t, svc.Logout(context.Background(), "comp1", "inst1"))
	assert.True(t, repo.cleared)
}
