package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/rasp/pkg/api"
	"github.com/travigo/rasp/pkg/commands"
	"github.com/travigo/rasp/pkg/config"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RASP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RASP_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "rasp",
		Description: "Command line client and proxy for the Yandex Rasp schedule API",

		Flags: append(config.Flags(), commands.Flags()...),
		Commands: append(commands.Commands(),
			api.RegisterCLI(),
		),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
