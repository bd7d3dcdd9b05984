package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/gg"

	"snowflake/internal/commands"
	"snowflake/internal/config"
	"snowflake/internal/logger"
)

func main() {
	log := logger.New(logger.Options{Path: logger.LogFilePath, Echo: os.Stderr})
	defer log.Close()
	gg.SetLogger(log.Slog())

	reg := commands.NewRegistry()
	registerDraw(reg, log)
	registerExport(reg, log)
	registerInit(reg, log)
	reg.SetDefault("draw")

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, commands.ErrNoCommand) || isUnknown(err) {
			fmt.Fprintln(os.Stderr, "usage: snowflake <command> [flags]")
			reg.Usage(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func isUnknown(err error) bool {
	var u *commands.UnknownError
	return errors.As(err, &u)
}

// loadPrefs reads the config file and applies command-line overrides on top. set names the
// Prefs fields whose flags were given, so explicit zero values still override.
func loadPrefs(path string, overrides config.Prefs, set []string) (config.Prefs, error) {
	prefs, err := config.Load(path)
	if err != nil {
		return prefs, err
	}
	if err := config.Overlay(&prefs, overrides, set...); err != nil {
		return prefs, err
	}
	return prefs, nil
}
