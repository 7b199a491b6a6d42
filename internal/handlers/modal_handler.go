package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/dto"
	"fbcal_workspace/internal/cursor"
	"fbcal_workspace/internal/middleware"
	"fbcal_workspace/services"
)

func modalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "event not available"})
	case errors.Is(err, services.ErrNotConnected):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "no facebook account connected"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "facebook request failed"})
	}
}

// GET /GetModalEvent/:compID
// Headers: event_id, desired_data in {all, cover, guests, feed}.
func GetModalEventHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Get("event_id")
		desired := c.Get("desired_data")
		if eventID == "" || desired == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "missing event_id or desired_data"})
		}

		ctx, cancel := requestCtx()
		defer cancel()
		resp, err := svc.ModalEvent(ctx, c.Params("compID"), middleware.InstanceID(c), eventID, desired)
		if err != nil {
			return modalError(c, err)
		}
		return c.JSON(resp)
	}
}

// GET /GetModalFeed/:compID
// Headers: object_id, desired_data in {feed, comments}, after or until.
func GetModalFeedHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		objectID := c.Get("object_id")
		desired := c.Get("desired_data")
		if objectID == "" || desired == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "missing object_id or desired_data"})
		}
		paging := cursor.Paging{
			After: c.Get("after"),
			Until: c.Get("until"),
		}

		ctx, cancel := requestCtx()
		defer cancel()
		resp, err := svc.ModalFeed(ctx, c.Params("compID"), middleware.InstanceID(c), objectID, desired, paging)
		if err != nil {
			return modalError(c, err)
		}
		return c.JSON(resp)
	}
}
