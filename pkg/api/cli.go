package api

import (
	"github.com/urfave/cli/v2"

	"github.com/travigo/rasp/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides an HTTP proxy in front of the Rasp API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.FromCLI(c)
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), cfg.NewClient())
				},
			},
		},
	}
}
