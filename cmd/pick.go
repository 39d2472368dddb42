package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/urfave/cli/v3"

	"posterkit/internal/formatter"
	"posterkit/internal/shared"
	"posterkit/internal/ui"
)

// Pick launches the terminal album picker for the query argument.
//
// Logs are redirected to a file while the TUI owns the terminal. When the
// user confirms a selection the poster prints to stdout, or exports as
// Markdown when --export is set.
func (r *Runner) Pick(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	config := r.loadConfig(cmd.String("config"))
	catalog := r.resolveCatalog(config)

	fileLogger, err := shared.NewFileLogger("logs/pick.log")
	if err == nil {
		r.SetLogger(fileLogger)
	}

	model := ui.NewModel(ctx, catalog, query)
	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	final, ok := finalModel.(ui.Model)
	if !ok {
		return fmt.Errorf("%w: unexpected model type", shared.ErrInvalidInput)
	}

	poster, ok := final.Poster()
	if !ok {
		return r.writePlainln("No album selected")
	}

	if dir := cmd.String("export"); dir != "" {
		result, err := formatter.WriteMarkdownExport(poster, dir)
		if err != nil {
			return err
		}
		return r.writePlainln("Exported poster to %s", result.Directory)
	}

	return r.writePlain("%s", formatter.PosterText(poster))
}
