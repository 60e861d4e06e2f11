package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/travigo/rasp/pkg/api/routes"
	"github.com/travigo/rasp/pkg/rasp"
)

// NewApp builds the proxy. Every route forwards to the Rasp API through
// client, so the API key never leaves the server.
func NewApp(client *rasp.Client) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger(log.Logger))

	group := webApp.Group("/v1")

	group.Get("version", routes.APIVersion)

	routes.SearchRouter(group.Group("/search"), client)
	routes.ScheduleRouter(group.Group("/schedule"), client)
	routes.StationsRouter(group.Group("/stations"), client)

	return webApp
}

func SetupServer(listen string, client *rasp.Client) error {
	log.Info().Str("listen", listen).Msg("Starting Rasp proxy")

	return NewApp(client).Listen(listen)
}
