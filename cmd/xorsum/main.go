/*
xorsum prints the XOR checking data of a file, or checks a file against checking data generated earlier.

	xorsum <file_name>                 prints "Result: <checking data>"
	xorsum <file_name> <check_data>    verifies the file

The exit code is 0 on success, 1 for invalid parameters, 2 when the file could not be processed and 3 when the
file does not match the checking data.
*/
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

const usage = "xorsum <file_name> [<check_data>]"

var app *cli.App = cli.NewApp()

// set up in app.Before from the logging flags
var logger *slog.Logger = slog.Default()

func init() {
	app.Name = "xorsum"
	app.Usage = "Generate or verify the XOR checking data of a file"
	app.UsageText = usage
	app.HideVersion = true

	// the only arguments are positional, so no file name can be taken
	// for a help command
	app.HideHelp = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Minimum level to log: debug, info, warn or error",
			EnvVars: []string{"XORSUM_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "console",
			Usage:   "Log output format: console or json",
			EnvVars: []string{"XORSUM_LOG_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
			EnvVars: []string{"XORSUM_QUIET"},
		},
	}

	app.Before = func(c *cli.Context) error {
		level := c.String("log-level")
		if c.Bool("quiet") {
			level = "error"
		}

		l, err := newLogger(c.App.ErrWriter, level, c.String("log-format"))
		if err != nil {
			return cli.Exit(err.Error(), exitInvalidParameter)
		}

		logger = l
		return nil
	}

	app.Action = Run

	// exit codes are handled in main, so that the app can be run from tests
	app.ExitErrHandler = func(*cli.Context, error) {}
}

// Run picks generate or verify mode from the number of arguments
func Run(c *cli.Context) error {
	switch c.Args().Len() {
	case 1:
		return generate(c, c.Args().Get(0))
	case 2:
		return verify(c, c.Args().Get(0), c.Args().Get(1))
	default:
		return usageError(
			fmt.Sprintf("Invalid number of arguments - %v", c.Args().Len()),
		)
	}
}

func main() {
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	err := app.Run(os.Args)
	if err == nil {
		return
	}

	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		os.Exit(coder.ExitCode())
	}

	os.Exit(exitInvalidParameter)
}
