package main

import (
	"flag"

	"snowflake/internal/commands"
	"snowflake/internal/config"
	"snowflake/internal/logger"
)

// registerInit adds the "init" subcommand, which writes the effective preferences (defaults,
// then the existing file, if any) back to the config path so they can be edited.
func registerInit(reg *commands.Registry, log *logger.Logger) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	cfgPath := fs.String("config", config.ConfigPath, "preferences file to write")

	reg.Register("init", "write the preferences file with every setting filled in", fs, func() error {
		prefs, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		if err := config.Save(*cfgPath, prefs); err != nil {
			return err
		}
		log.Info("preferences written", "path", *cfgPath)
		return nil
	})
}
