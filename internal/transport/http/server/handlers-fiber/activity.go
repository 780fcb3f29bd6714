package handlers_fiber

import (
	"fmt"
	"net/http"
	"net/url"

	"mergington-activities-api/internal/api"
	"mergington-activities-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetActivities returns the full roster keyed by activity name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	list, err := h.uc.ListActivities(c.Context())
	if err != nil {
		h.log.Errorw("failed to list activities", "error", err.Error())
		return writeError(c, err, "", "")
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivityMap(list))
}

// PostSignup adds the email from the query string to the named activity.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	name := activityParam(c)
	email := c.Query("email")

	activity, err := h.uc.Signup(c.Context(), name, email)
	if err != nil {
		h.log.Infow("signup rejected", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err, name, email)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	})
}

// DeleteUnregister removes the email from the named activity.
func (h *Handler) DeleteUnregister(c *fiber.Ctx) error {
	name := activityParam(c)
	email := c.Query("email")

	activity, err := h.uc.Unregister(c.Context(), name, email)
	if err != nil {
		h.log.Infow("unregister rejected", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err, name, email)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity.Name),
	})
}

// activityParam returns the :name route parameter percent-decoded.
// Fiber leaves path segments encoded; query values arrive already decoded.
func activityParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
