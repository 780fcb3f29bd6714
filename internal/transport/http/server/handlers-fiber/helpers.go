package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"mergington-activities-api/internal/api"
	"mergington-activities-api/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// writeError maps domain errors to the wire contract. Membership failures
// carry the activity and email so clients get an actionable detail string.
func writeError(c *fiber.Ctx, err error, activityName, email string) error {
	status := http.StatusInternalServerError
	detail := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		detail = "Activity not found"
	case errors.Is(err, entities.ErrAlreadyRegistered):
		status = http.StatusBadRequest
		detail = fmt.Sprintf("%s is already signed up for %s", email, activityName)
	case errors.Is(err, entities.ErrNotRegistered):
		status = http.StatusBadRequest
		detail = fmt.Sprintf("%s is not signed up for %s", email, activityName)
	}

	return c.Status(status).JSON(api.ErrorResponse{Detail: detail})
}
