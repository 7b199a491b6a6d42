package routes

import (
	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/internal/handlers"
	"fbcal_workspace/internal/middleware"
	"fbcal_workspace/services"
)

func WidgetRoutes(app *fiber.App, svc *services.Service) {
	app.Get("/GetSettingsWidget/:compID", handlers.GetSettingsWidgetHandler(svc))

	owner := middleware.RequireOwner()
	app.Get("/GetSettingsSettings/:compID", owner, handlers.GetSettingsSettingsHandler(svc))
	app.Get("/GetAllEvents/:compID", owner, handlers.GetAllEventsHandler(svc))
	app.Put("/SaveSettings/:compID", owner, handlers.SaveSettingsHandler(svc))
	app.Put("/SaveAccessToken/:compID", owner, handlers.SaveAccessTokenHandler(svc))
	app.Put("/Logout/:compID", owner, handlers.LogoutHandler(svc))
}
