package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

func StationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "download the station list and look stations up",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "find",
				Usage: "only show stations whose title contains this text",
			},
			&cli.StringFlag{
				Name:  "code",
				Usage: "only show the station with this yandex or ESR code",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "print the number of stations instead of listing them",
			},
			languageFlag(),
		},
		Action: runStations,
	}
}

func runStations(c *cli.Context) error {
	cc, err := setup(c)
	if err != nil {
		return err
	}

	request, err := params.StationsList{Language: cc.language(c)}.Request(cc.client)
	if err != nil {
		return err
	}

	log.Info().Msg("Downloading station list")
	list, err := request.Execute(c.Context)
	if err != nil {
		return err
	}

	var stations []rasp.FlatStation
	switch {
	case c.String("code") != "":
		station, ok := list.FindByCode(c.String("code"))
		if !ok {
			return fmt.Errorf("no station with code %q", c.String("code"))
		}
		stations = []rasp.FlatStation{station}
	case c.String("find") != "":
		stations = list.FindStations(c.String("find"))
	default:
		stations = list.Stations()
	}

	if c.Bool("count") {
		_, err := fmt.Fprintln(c.App.Writer, len(stations))
		return err
	}

	return cc.renderer.Stations(stations)
}
