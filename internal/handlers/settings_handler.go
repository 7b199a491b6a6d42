package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/dto"
	"fbcal_workspace/internal/middleware"
	"fbcal_workspace/services"
)

// Graph-backed reads fan out to Facebook, so they get a wider bound than a
// plain database call.
const requestTimeout = 15 * time.Second

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// GET /GetSettingsWidget/:compID
func GetSettingsWidgetHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()
		resp := svc.WidgetSettings(ctx, c.Params("compID"), middleware.InstanceID(c))
		return c.JSON(resp)
	}
}

// GET /GetSettingsSettings/:compID
func GetSettingsSettingsHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()
		resp := svc.PanelSettings(ctx, c.Params("compID"), middleware.InstanceID(c))
		return c.JSON(resp)
	}
}

// GET /GetAllEvents/:compID
func GetAllEventsHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()
		events, err := svc.AllEvents(ctx, c.Params("compID"), middleware.InstanceID(c))
		if err != nil {
			if errors.Is(err, services.ErrNotConnected) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "no facebook account connected"})
			}
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "could not fetch events"})
		}
		return c.JSON(events)
	}
}

// PUT /SaveSettings/:compID
func SaveSettingsHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SaveSettingsReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()
		if err := svc.SaveSettings(ctx, c.Params("compID"), middleware.InstanceID(c), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "could not save settings"})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// PUT /SaveAccessToken/:compID
func SaveAccessTokenHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SaveAccessTokenReq
		if err := c.BodyParser(&body); err != nil || body.AccessToken == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()
		if err := svc.SaveAccessToken(ctx, c.Params("compID"), middleware.InstanceID(c), body.AccessToken); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "token exchange failed"})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// PUT /Logout/:compID
func LogoutHandler(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()
		if err := svc.Logout(ctx, c.Params("compID"), middleware.InstanceID(c)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "logout failed"})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
