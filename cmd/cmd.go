// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand writes a starter config file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config.toml from the embedded template",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: r.Setup,
	}
}

// serveCommand runs the HTTP facade
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the album poster HTTP server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind address (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// searchCommand performs a one-shot album lookup
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Look up the best album match and print its poster fields",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the poster to a text file",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Export a Markdown poster (with cover) to this directory",
			},
		},
		Action: r.Search,
	}
}

// suggestCommand prints autocomplete candidates
func suggestCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "suggest",
		Usage: "Print album suggestions for a partial query",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of suggestions",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Suggest,
	}
}

// pickCommand launches the interactive album picker
func pickCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "Interactively pick among album matches and render the poster",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "export",
				Usage: "Export the picked poster as Markdown to this directory",
			},
		},
		Action: r.Pick,
	}
}
