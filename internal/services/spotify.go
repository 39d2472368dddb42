// Spotify API implementation of [Catalog]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"posterkit/internal/shared"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents an album summary as returned by the search endpoint.
type SpotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	ReleaseDate string          `json:"release_date"`
	TotalTracks int             `json:"total_tracks"`
	Images      []SpotifyImage  `json:"images"`
	URI         string          `json:"uri"`
}

// SpotifyAlbumTrack represents a track within an album context.
type SpotifyAlbumTrack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	DurationMS  int             `json:"duration_ms"`
	TrackNumber int             `json:"track_number"`
}

type albumTrackPage struct {
	Items []SpotifyAlbumTrack `json:"items"`
	Total int                 `json:"total"`
}

// SpotifyAlbumDetail represents a full album record from GET /albums/{id}.
//
// Release dates come back with variable precision: "2025", "2025-08", or "2025-08-25".
type SpotifyAlbumDetail struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	Images      []SpotifyImage  `json:"images"`
	ReleaseDate string          `json:"release_date"`
	Label       string          `json:"label"`
	Tracks      albumTrackPage  `json:"tracks"`
	URI         string          `json:"uri"`
}

type searchResponse struct {
	Albums struct {
		Items []SpotifyAlbum `json:"items"`
	} `json:"albums"`
}

// SpotifyService implements the [Catalog] interface against the Spotify Web API.
//
// Authentication uses the OAuth2 client credentials flow via
// [clientcredentials.Config]; no user authorization is involved.
type SpotifyService struct {
	creds      *clientcredentials.Config
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyService creates a new Spotify catalog service with the given credentials.
//
// Empty credentials are accepted here: validation is deferred to the first
// token exchange, which fails with [shared.ErrAuthFailed]. The optional
// "token_url" and "api_url" keys override the Spotify endpoints (used by tests).
func NewSpotifyService(credentials map[string]string) *SpotifyService {
	tokenURL := credentials["token_url"]
	if tokenURL == "" {
		tokenURL = spotifyTokenURL
	}

	baseURL := credentials["api_url"]
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	creds := &clientcredentials.Config{
		ClientID:     credentials["client_id"],
		ClientSecret: credentials["client_secret"],
		TokenURL:     tokenURL,
	}

	return &SpotifyService{
		creds:      creds,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// AcquireToken performs the client credentials exchange and returns a fresh bearer token.
//
// Each call constructs a new token source, so nothing is reused across requests.
func (s *SpotifyService) AcquireToken(ctx context.Context) (string, error) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token", shared.ErrAuthFailed)
	}

	return token.AccessToken, nil
}

// doRequest performs an authenticated GET against the Spotify API and decodes
// the JSON response into result.
func (s *SpotifyService) doRequest(ctx context.Context, token, endpoint string, result any) error {
	apiURL := s.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify API status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
		}
	}

	return nil
}

// SearchAlbums searches the album scope of the catalog.
//
// The query is passed through to the upstream API unvalidated, empty strings
// included; Spotify answers those with its own error, surfaced as
// [shared.ErrAPIRequest].
func (s *SpotifyService) SearchAlbums(ctx context.Context, token, query string, limit int) ([]SpotifyAlbum, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "album")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var response searchResponse
	if err := s.doRequest(ctx, token, "/search?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	return response.Albums.Items, nil
}

// Album retrieves a full album record by ID.
func (s *SpotifyService) Album(ctx context.Context, token, albumID string) (*SpotifyAlbumDetail, error) {
	var detail SpotifyAlbumDetail
	endpoint := fmt.Sprintf("/albums/%s", url.PathEscape(albumID))
	if err := s.doRequest(ctx, token, endpoint, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}
