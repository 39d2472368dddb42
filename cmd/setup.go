package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"posterkit/internal/shared"
)

// Setup writes a starter config file from the embedded template. Refuses to
// overwrite an existing file unless --force is set.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if cmd.Bool("force") {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("created config file", "path", path)
	return r.writePlainln("Created %s. Fill in your Spotify credentials before serving.", path)
}
