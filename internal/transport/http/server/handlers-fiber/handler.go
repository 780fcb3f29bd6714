// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"mergington-activities-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the activities API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterHandlers mounts the API routes on the app.
func RegisterHandlers(app *fiber.App, h *Handler) {
	app.Get("/activities", h.GetActivities)
	app.Post("/activities/:name/signup", h.PostSignup)
	app.Delete("/activities/:name/unregister", h.DeleteUnregister)
}
