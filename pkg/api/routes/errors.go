package routes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

var defaultGroups = []string{"basic", "detailed"}

// StatusForError maps a failure to the status the proxy answers with. API
// errors keep the upstream status, anything else that went wrong upstream is
// a bad gateway or an unavailable service.
func StatusForError(err error) int {
	var paramsErr *params.Error
	if errors.As(err, &paramsErr) {
		return fiber.StatusBadRequest
	}

	raspErr, ok := rasp.AsError(err)
	if !ok {
		return fiber.StatusInternalServerError
	}

	switch raspErr.Kind {
	case rasp.KindAPI:
		if raspErr.Status >= fiber.StatusBadRequest {
			return raspErr.Status
		}
		return fiber.StatusBadGateway
	case rasp.KindTransport:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadGateway
	}
}

func sendError(c *fiber.Ctx, err error) error {
	c.Status(StatusForError(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendBadRequest(c *fiber.Ctx, message string) error {
	c.Status(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

// sendReduced writes value reduced to the groups named in the groups query
// parameter, or to every group.
func sendReduced(c *fiber.Ctx, value any) error {
	groups := defaultGroups
	if requested := c.Query("groups"); requested != "" {
		groups = strings.Split(requested, ",")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce response",
		})
	}

	return c.JSON(reduced)
}
