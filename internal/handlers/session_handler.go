package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fbcal_workspace/dto"
	"fbcal_workspace/internal/middleware"
	"fbcal_workspace/internal/modal"
	"fbcal_workspace/services"
)

// The modal session endpoints return the full session snapshot after every
// mutation; the frontend re-renders from it, message modal included.

func unknownSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "unknown session"})
}

func snapshotOrGone(c *fiber.Ctx, session *modal.Session, err error) error {
	switch {
	case errors.Is(err, modal.ErrDisposed):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Message: "session expired"})
	case errors.Is(err, modal.ErrReload):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "session must be reopened"})
	default:
		// ErrRejected and ErrInteraction both land here: the snapshot
		// carries whatever modal the failure raised.
		return c.JSON(session.Snapshot())
	}
}

// POST /modal/:compID/session
func OpenSessionHandler(svc *services.Service, store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.OpenSessionReq
		if err := c.BodyParser(&body); err != nil || body.EventID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()
		session, err := svc.OpenModalSession(ctx, store, c.Params("compID"), middleware.InstanceID(c), body.EventID)
		if err != nil && session == nil {
			return modalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(session.Snapshot())
	}
}

// GET /modal/session/:sessionID
func GetSessionHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		return c.JSON(session.Snapshot())
	}
}

// POST /modal/session/:sessionID/interact
func InteractHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		var body dto.InteractReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		action, err := modal.ParseAction(body.Action)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}

		ctx, cancel := requestCtx()
		defer cancel()
		return snapshotOrGone(c, session, session.Interact(ctx, action, body.Key, body.Message))
	}
}

// POST /modal/session/:sessionID/retry
func RetryHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		ctx, cancel := requestCtx()
		defer cancel()
		return snapshotOrGone(c, session, session.Retry(ctx))
	}
}

// POST /modal/session/:sessionID/share
func ShareHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		return snapshotOrGone(c, session, session.ShareEvent())
	}
}

// POST /modal/session/:sessionID/feed/more
func MoreFeedHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		ctx, cancel := requestCtx()
		defer cancel()
		return snapshotOrGone(c, session, session.ShowMoreFeed(ctx))
	}
}

// POST /modal/session/:sessionID/replies/:index
func MoreRepliesHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.Get(c.Params("sessionID"))
		if session == nil {
			return unknownSession(c)
		}
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid index"})
		}
		ctx, cancel := requestCtx()
		defer cancel()
		return snapshotOrGone(c, session, session.ShowMoreReplies(ctx, index))
	}
}

// DELETE /modal/session/:sessionID
func CloseSessionHandler(store *modal.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store.Close(c.Params("sessionID"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}
