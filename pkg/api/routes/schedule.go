package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

func ScheduleRouter(router fiber.Router, client *rasp.Client) {
	router.Get("/:station", func(c *fiber.Ctx) error {
		return getSchedule(c, client)
	})
}

func getSchedule(c *fiber.Ctx, client *rasp.Client) error {
	var scheduleParams params.Schedule
	if err := c.QueryParser(&scheduleParams); err != nil {
		return sendBadRequest(c, err.Error())
	}
	scheduleParams.Station = c.Params("station")

	request, err := scheduleParams.Request(client)
	if err != nil {
		return sendError(c, err)
	}

	result, err := request.Execute(c.UserContext())
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, result)
}
