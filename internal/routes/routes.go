package routes

import (
	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/internal/middleware"
	"fbcal_workspace/internal/modal"
	"fbcal_workspace/services"
)

// RegisterRoutes mounts the whole API. Every route sits behind instance
// verification; the settings panel and writes additionally need the owner
// permission.
func RegisterRoutes(app *fiber.App, svc *services.Service, store *modal.Store, instanceSecret string) {
	app.Use(middleware.VerifyInstance(instanceSecret))

	WidgetRoutes(app, svc)
	ModalRoutes(app, svc, store)
}
