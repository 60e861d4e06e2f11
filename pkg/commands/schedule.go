package commands

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"github.com/travigo/rasp/pkg/params"
	"github.com/travigo/rasp/pkg/rasp"
)

const maxConcurrentSchedules = 4

func ScheduleCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "date",
			Usage: "date of the schedule, YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  "transport",
			Usage: "transport type",
		},
		&cli.StringFlag{
			Name:  "direction",
			Usage: "suburban direction code, or all",
		},
		&cli.StringFlag{
			Name:  "event",
			Usage: "departure or arrival",
		},
		&cli.StringFlag{
			Name:  "system",
			Usage: "coding system of the station codes",
		},
		&cli.StringFlag{
			Name:  "show-systems",
			Usage: "coding systems to include in the response",
		},
		&cli.StringFlag{
			Name:  "timezone",
			Usage: "render times in this IANA time zone",
		},
		languageFlag(),
	}

	return &cli.Command{
		Name:      "schedule",
		Usage:     "show the schedule of one or more stations",
		ArgsUsage: "STATION [STATION...]",
		Flags:     append(flags, pagingFlags()...),
		Action:    runSchedule,
	}
}

type indexedSchedule struct {
	index  int
	result *rasp.ScheduleResult
}

func runSchedule(c *cli.Context) error {
	stations := c.Args().Slice()
	if len(stations) == 0 {
		return errors.New("at least one station code is required")
	}

	cc, err := setup(c)
	if err != nil {
		return err
	}

	requests := make([]rasp.ScheduleRequest, 0, len(stations))
	for _, station := range stations {
		request, err := params.Schedule{
			Station:        station,
			Date:           c.String("date"),
			TransportType:  c.String("transport"),
			Direction:      c.String("direction"),
			Event:          c.String("event"),
			System:         c.String("system"),
			ShowSystems:    c.String("show-systems"),
			Language:       cc.language(c),
			Limit:          c.String("limit"),
			Offset:         c.String("offset"),
			ResultTimezone: c.String("timezone"),
		}.Request(cc.client)
		if err != nil {
			return err
		}
		requests = append(requests, request)
	}

	results, err := fetchSchedules(c.Context, requests)
	if err != nil {
		return err
	}

	return cc.renderer.Schedules(results)
}

// fetchSchedules executes the requests concurrently and returns the results
// in request order. The first failure cancels the remaining requests.
func fetchSchedules(ctx context.Context, requests []rasp.ScheduleRequest) ([]*rasp.ScheduleResult, error) {
	p := pool.NewWithResults[indexedSchedule]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxConcurrentSchedules)

	for i, request := range requests {
		i, request := i, request
		p.Go(func(ctx context.Context) (indexedSchedule, error) {
			result, err := request.Execute(ctx)
			if err != nil {
				log.Debug().Err(err).Str("station", request.Station()).Msg("Schedule request failed")
				return indexedSchedule{}, err
			}
			return indexedSchedule{index: i, result: result}, nil
		})
	}

	indexed, err := p.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(indexed, func(a, b indexedSchedule) int {
		return a.index - b.index
	})

	results := make([]*rasp.ScheduleResult, 0, len(indexed))
	for _, schedule := range indexed {
		results = append(results, schedule.result)
	}
	return results, nil
}
