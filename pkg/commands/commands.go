// Package commands holds the rasp CLI commands. Each command loads its config
// from the global flags, performs one or more API requests and renders the
// results to the app's writer.
package commands

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/travigo/rasp/pkg/config"
	"github.com/travigo/rasp/pkg/output"
	"github.com/travigo/rasp/pkg/rasp"
)

const (
	flagOutput = "output"
	flagGroups = "groups"
)

// Flags are the global output flags shared by every command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Value:   string(output.FormatText),
			Usage:   "output format: json, csv, pretty or text",
		},
		&cli.StringFlag{
			Name:  flagGroups,
			Value: strings.Join(output.DefaultGroups, ","),
			Usage: "comma separated field groups for json output (basic, detailed)",
		},
	}
}

func Commands() []*cli.Command {
	return []*cli.Command{
		SearchCommand(),
		ScheduleCommand(),
		StationsCommand(),
	}
}

type commandContext struct {
	config   *config.Config
	client   *rasp.Client
	renderer *output.Renderer
}

func setup(c *cli.Context) (*commandContext, error) {
	format, err := output.ParseFormat(c.String(flagOutput))
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromCLI(c)
	if err != nil {
		return nil, err
	}

	var groups []string
	for _, group := range strings.Split(c.String(flagGroups), ",") {
		if group = strings.TrimSpace(group); group != "" {
			groups = append(groups, group)
		}
	}

	return &commandContext{
		config:   cfg,
		client:   cfg.NewClient(),
		renderer: output.NewRenderer(c.App.Writer, format, groups),
	}, nil
}

// language picks the --lang flag over the configured language.
func (cc *commandContext) language(c *cli.Context) string {
	if language := c.String("lang"); language != "" {
		return language
	}
	if language, ok := cc.config.LanguageOption(); ok {
		return string(language)
	}
	return ""
}

// optionalBool renders a bool flag as a parameter, empty when not set.
func optionalBool(c *cli.Context, name string) string {
	if !c.IsSet(name) {
		return ""
	}
	if c.Bool(name) {
		return "true"
	}
	return "false"
}

func languageFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "lang",
		Usage: "response language: ru_RU or uk_UA",
	}
}

func pagingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "limit",
			Usage: "maximum number of results",
		},
		&cli.StringFlag{
			Name:  "offset",
			Usage: "number of results to skip",
		},
	}
}
