package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/travigo/rasp/pkg/filter"
	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

func SearchRouter(router fiber.Router, client *rasp.Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getSearch(c, client)
	})
}

func getSearch(c *fiber.Ctx, client *rasp.Client) error {
	var searchParams params.Search
	if err := c.QueryParser(&searchParams); err != nil {
		return sendBadRequest(c, err.Error())
	}

	var segmentFilter *filter.Filter
	if expression := c.Query("filter"); expression != "" {
		var err error
		if segmentFilter, err = filter.Compile(expression); err != nil {
			return sendBadRequest(c, err.Error())
		}
	}

	request, err := searchParams.Request(client)
	if err != nil {
		return sendError(c, err)
	}

	result, err := request.Execute(c.UserContext())
	if err != nil {
		return sendError(c, err)
	}

	if segmentFilter != nil {
		if err := segmentFilter.ApplyResult(result); err != nil {
			return sendBadRequest(c, err.Error())
		}
	}

	return sendReduced(c, result)
}
