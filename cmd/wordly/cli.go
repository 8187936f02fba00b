package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/ops"
	"github.com/hpungsan/wordly/internal/web"
	"github.com/hpungsan/wordly/internal/word"
)

// newCLIApp creates the CLI application with all commands.
// d may be nil when only help or version output is needed.
func newCLIApp(d *deps) *cli.App {
	app := &cli.App{
		Name:    "wordly",
		Usage:   "A word a day, kept locally",
		Version: Version,
		Commands: []*cli.Command{
			todayCmd(d),
			defineCmd(d),
			historyCmd(d),
			showCmd(d),
			latestCmd(d),
			clearCmd(d),
			serveCmd(d),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// todayCmd creates the today command.
func todayCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Fetch a random word and record it in history",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-save", Usage: "Do not record the word in history"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json|markdown"},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Today(c.Context, d.src, d.store, ops.TodayInput{
				NoSave: c.Bool("no-save"),
			})
			// A failed save still prints the fetched word.
			if output != nil {
				if werr := outputWord(c.App.Writer, format, output, output.Word); werr != nil {
					return werr
				}
			}
			if err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// defineCmd creates the define command.
func defineCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "define",
		Usage:     "Look up a specific word",
		ArgsUsage: "<headword>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "save", Aliases: []string{"s"}, Usage: "Record the word in history"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json|markdown"},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return outputError(err)
			}
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("headword argument is required"))
			}

			output, err := ops.Define(c.Context, d.src, d.store, ops.DefineInput{
				Headword: c.Args().First(),
				Save:     c.Bool("save"),
			})
			if output != nil {
				if werr := outputWord(c.App.Writer, format, output, output.Word); werr != nil {
					return werr
				}
			}
			if err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// historyCmd creates the history command.
func historyCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List saved words, most recent first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 0, Usage: "Maximum words to return (0 for all)"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Words to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.History(c.Context, d.store, ops.HistoryInput{
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// showCmd creates the show command.
func showCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a saved word",
		ArgsUsage: "<headword>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json|markdown"},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Show(c.Context, d.store, ops.ShowInput{Headword: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputWord(c.App.Writer, format, output, output)
		},
	}
}

// latestCmd creates the latest command.
func latestCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "Show the most recently saved word",
		Action: func(c *cli.Context) error {
			output, err := ops.Latest(c.Context, d.store)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete all saved words",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm deletion"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return outputError(errors.NewInvalidRequest("refusing to clear history without --yes"))
			}

			output, err := ops.Clear(c.Context, d.store)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Usage: "Address to bind (default from config: 127.0.0.1)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (default from config: 8377)"},
		},
		Action: func(c *cli.Context) error {
			bind := c.String("bind")
			if bind == "" {
				bind = d.cfg.WebBind
			}
			port := c.Int("port")
			if port == 0 {
				port = d.cfg.WebPort
			}
			if port < 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("invalid port %d", port)))
			}

			srv, err := web.NewServer(d.src, d.store, d.log, Version, bind, port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			return web.Run(srv, d.log)
		},
	}
}

// Helper functions

type outputFormat string

const (
	formatJSON     outputFormat = "json"
	formatMarkdown outputFormat = "markdown"
)

func parseFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatJSON, formatMarkdown:
		return outputFormat(s), nil
	case "md":
		return formatMarkdown, nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("unknown format %q (want json or markdown)", s))
}

// outputWord writes v as JSON, or w as a markdown card.
func outputWord(out io.Writer, format outputFormat, v any, w *word.Word) error {
	if format == formatMarkdown {
		_, err := io.WriteString(out, word.Markdown(w))
		return err
	}
	return outputJSON(out, v)
}

// outputJSON marshals result to out as JSON.
func outputJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if wErr, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", wErr.Code, wErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
