package routes

import (
	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/internal/handlers"
	"fbcal_workspace/internal/modal"
	"fbcal_workspace/services"
)

func ModalRoutes(app *fiber.App, svc *services.Service, store *modal.Store) {
	app.Get("/GetModalEvent/:compID", handlers.GetModalEventHandler(svc))
	app.Get("/GetModalFeed/:compID", handlers.GetModalFeedHandler(svc))

	app.Post("/modal/:compID/session", handlers.OpenSessionHandler(svc, store))

	session := app.Group("/modal/session/:sessionID")
	session.Get("/", handlers.GetSessionHandler(store))
	session.Post("/interact", handlers.InteractHandler(store))
	session.Post("/retry", handlers.RetryHandler(store))
	session.Post("/share", handlers.ShareHandler(store))
	session.Post("/feed/more", handlers.MoreFeedHandler(store))
	session.Post("/replies/:index", handlers.MoreRepliesHandler(store))
	session.Delete("/", handlers.CloseSessionHandler(store))
}
