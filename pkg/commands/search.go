package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/rasp/pkg/filter"
	"github.com/travigo/rasp/pkg/params"
)

func SearchCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Required: true,
			Usage:    "departure station or settlement code",
		},
		&cli.StringFlag{
			Name:     "to",
			Required: true,
			Usage:    "arrival station or settlement code",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "date to search on, YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  "transport",
			Usage: "transport type: plane, train, suburban, bus, water or helicopter",
		},
		&cli.StringFlag{
			Name:  "system",
			Usage: "coding system of the from and to codes",
		},
		&cli.StringFlag{
			Name:  "show-systems",
			Usage: "coding systems to include in the response",
		},
		&cli.BoolFlag{
			Name:  "transfers",
			Usage: "include journeys with changes",
		},
		&cli.BoolFlag{
			Name:  "days",
			Usage: "include the days each thread runs on",
		},
		&cli.StringFlag{
			Name:  "timezone",
			Usage: "render times in this IANA time zone",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: `filter expression, e.g. 'transport_type == "suburban" && departure >= "08:00"'`,
		},
		languageFlag(),
	}

	return &cli.Command{
		Name:   "search",
		Usage:  "search for trips between two stations",
		Flags:  append(flags, pagingFlags()...),
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	var segmentFilter *filter.Filter
	if expression := c.String("filter"); expression != "" {
		var err error
		if segmentFilter, err = filter.Compile(expression); err != nil {
			return err
		}
	}

	cc, err := setup(c)
	if err != nil {
		return err
	}

	request, err := params.Search{
		From:           c.String("from"),
		To:             c.String("to"),
		Date:           c.String("date"),
		TransportType:  c.String("transport"),
		System:         c.String("system"),
		ShowSystems:    c.String("show-systems"),
		Language:       cc.language(c),
		Limit:          c.String("limit"),
		Offset:         c.String("offset"),
		AddDaysMask:    optionalBool(c, "days"),
		Transfers:      optionalBool(c, "transfers"),
		ResultTimezone: c.String("timezone"),
	}.Request(cc.client)
	if err != nil {
		return err
	}

	result, err := request.Execute(c.Context)
	if err != nil {
		return err
	}

	if segmentFilter != nil {
		total := len(result.Segments)
		if err := segmentFilter.ApplyResult(result); err != nil {
			return err
		}
		log.Debug().
			Str("filter", segmentFilter.String()).
			Int("segments", total).
			Int("matched", len(result.Segments)).
			Msg("Filtered search results")
	}

	return cc.renderer.Search(result)
}
