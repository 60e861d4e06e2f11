package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

func StationsRouter(router fiber.Router, client *rasp.Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStations(c, client)
	})
	router.Get("/:code", func(c *fiber.Ctx) error {
		return getStation(c, client)
	})
}

func fetchStations(c *fiber.Ctx, client *rasp.Client) (*rasp.StationsList, error) {
	request, err := params.StationsList{Language: c.Query("lang")}.Request(client)
	if err != nil {
		return nil, err
	}
	return request.Execute(c.UserContext())
}

func listStations(c *fiber.Ctx, client *rasp.Client) error {
	find := c.Query("find")
	if find == "" {
		return sendBadRequest(c, "A find filter must be applied to the request")
	}

	list, err := fetchStations(c, client)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, list.FindStations(find))
}

func getStation(c *fiber.Ctx, client *rasp.Client) error {
	list, err := fetchStations(c, client)
	if err != nil {
		return sendError(c, err)
	}

	station, ok := list.FindByCode(c.Params("code"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching code",
		})
	}

	return sendReduced(c, station)
}
