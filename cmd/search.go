package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"posterkit/internal/formatter"
	"posterkit/internal/normalize"
	"posterkit/internal/shared"
)

// Search looks up the best album match for the query argument and prints the
// projected poster. One token exchange covers both the search and the detail
// fetch, matching the server's /search behavior.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	config := r.loadConfig(cmd.String("config"))
	catalog := r.resolveCatalog(config)

	token, err := catalog.AcquireToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire token: %w", err)
	}

	albums, err := catalog.SearchAlbums(ctx, token, query, 1)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(albums) == 0 {
		return fmt.Errorf("%w: no match for %q", shared.ErrAlbumNotFound, query)
	}

	detail, err := catalog.Album(ctx, token, albums[0].ID)
	if err != nil {
		return fmt.Errorf("album fetch failed: %w", err)
	}

	poster := normalize.ProjectAlbum(detail)

	if dir := cmd.String("export"); dir != "" {
		result, err := formatter.WriteMarkdownExport(poster, dir)
		if err != nil {
			return err
		}
		return r.writePlainln("Exported poster to %s", result.Directory)
	}

	if path := cmd.String("output"); path != "" {
		written, err := formatter.WriteTextExport(poster, path)
		if err != nil {
			return err
		}
		return r.writePlainln("Wrote poster to %s", written)
	}

	if cmd.Bool("json") {
		return r.writeJSON(poster, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.PosterText(poster))
}

// Suggest prints autocomplete candidates for a partial query, one per line.
func (r *Runner) Suggest(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	config := r.loadConfig(cmd.String("config"))
	catalog := r.resolveCatalog(config)

	token, err := catalog.AcquireToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire token: %w", err)
	}

	albums, err := catalog.SearchAlbums(ctx, token, query, cmd.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	suggestions := normalize.ProjectSuggestions(albums)

	if cmd.Bool("json") {
		return r.writeJSON(suggestions, cmd.Bool("pretty"))
	}

	if len(suggestions) == 0 {
		return r.writePlainln("No suggestions for %q", query)
	}

	for i, s := range suggestions {
		if err := r.writePlain("%d. %s by %s\n", i+1, s.Name, s.Artist); err != nil {
			return err
		}
	}

	return nil
}
