// package services defines interface Catalog for interacting with music catalog HTTP APIs
package services

import (
	"context"
)

// Catalog defines the interface for album catalog providers used by the HTTP
// facade and CLI. The token returned by AcquireToken is threaded through the
// catalog operations so that one inbound request performs exactly one
// credential exchange.
type Catalog interface {
	// AcquireToken exchanges stored client credentials for a short-lived
	// bearer token. Tokens are never cached; every call is a fresh round trip.
	AcquireToken(ctx context.Context) (string, error)

	// SearchAlbums issues a free-text album search, returning up to limit
	// summary items in the catalog's ranking order.
	SearchAlbums(ctx context.Context, token, query string, limit int) ([]SpotifyAlbum, error)

	// Album fetches the full record (tracks, label, image set) for one album.
	// The ID must come from a prior search result.
	Album(ctx context.Context, token, albumID string) (*SpotifyAlbumDetail, error)

	// Name returns the name of the catalog provider (e.g. "Spotify")
	Name() string
}
