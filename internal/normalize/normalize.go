// package normalize reshapes raw catalog JSON into flat, display-ready poster fields
package normalize

import (
	"fmt"
	"time"

	"posterkit/internal/services"
)

// UnknownArtist is the fallback artist name when the catalog returns an empty artist list.
const UnknownArtist = "Unknown Artist"

// UnknownLabel is the fallback when the catalog omits the record label.
const UnknownLabel = "Unknown"

// Poster is the flat, display-ready projection of an album detail record,
// consumed directly by the poster renderer frontend.
type Poster struct {
	Name        string   `json:"name"`
	Artist      string   `json:"artist"`
	Year        string   `json:"year"`
	ReleaseDate string   `json:"release_date"`
	Label       string   `json:"label"`
	Length      string   `json:"length"`
	Image       string   `json:"image"`
	Tracks      []string `json:"tracks"`
}

// Suggestion is one autocomplete candidate, in the catalog's ranking order.
type Suggestion struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// DateResult is the outcome of release date formatting. Parsed reports
// whether the raw value was understood; when false, Display carries the raw
// input verbatim. The fallback is policy, not an error path: the frontend
// prints whatever the catalog sent rather than failing the request.
type DateResult struct {
	Display string
	Parsed  bool
}

// FormatDuration renders a non-negative millisecond total as "M:SS".
//
// Minutes are unbounded and never zero-padded; seconds always render as two
// digits. Negative input clamps to zero so the result is always well-formed.
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}

	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatReleaseDate renders a catalog release date for display.
//
// The catalog reports dates with variable precision and the dispatch is on
// string length, matching that contract:
//
//	"2025"       → "2025"
//	"2025-08"    → "August 2025"
//	"2025-08-25" → "August 25, 2025"
//
// Anything that fails to parse comes back as a fallback [DateResult] carrying
// the raw input.
func FormatReleaseDate(raw string) DateResult {
	switch len(raw) {
	case 4:
		return DateResult{Display: raw, Parsed: true}
	case 7:
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return DateResult{Display: raw}
		}
		return DateResult{Display: parsed.Format("January 2006"), Parsed: true}
	default:
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return DateResult{Display: raw}
		}
		return DateResult{Display: parsed.Format("January 02, 2006"), Parsed: true}
	}
}

// ProjectAlbum flattens a full album record into a [Poster].
//
// Missing nested data degrades to defined fallbacks instead of faulting:
// no artists → [UnknownArtist], no images → empty URL, no label →
// [UnknownLabel], no tracks → empty list with length "0:00".
func ProjectAlbum(detail *services.SpotifyAlbumDetail) Poster {
	tracks := make([]string, 0, len(detail.Tracks.Items))
	totalMS := 0
	for _, track := range detail.Tracks.Items {
		tracks = append(tracks, track.Name)
		totalMS += track.DurationMS
	}

	label := detail.Label
	if label == "" {
		label = UnknownLabel
	}

	return Poster{
		Name:        detail.Name,
		Artist:      firstArtistName(detail.Artists),
		Year:        releaseYear(detail.ReleaseDate),
		ReleaseDate: FormatReleaseDate(detail.ReleaseDate).Display,
		Label:       label,
		Length:      FormatDuration(totalMS),
		Image:       firstImageURL(detail.Images),
		Tracks:      tracks,
	}
}

// ProjectSuggestions maps search summaries to [Suggestion] values, preserving
// the catalog's ranking order. The result is never nil so it serializes as a
// JSON array even when empty.
func ProjectSuggestions(items []services.SpotifyAlbum) []Suggestion {
	suggestions := make([]Suggestion, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, Suggestion{
			Name:   item.Name,
			Artist: firstArtistName(item.Artists),
		})
	}

	return suggestions
}

func firstArtistName(artists []services.SpotifyArtist) string {
	if len(artists) == 0 {
		return UnknownArtist
	}
	return artists[0].Name
}

func firstImageURL(images []services.SpotifyImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// releaseYear takes the leading 4 characters of the raw release date.
func releaseYear(raw string) string {
	if len(raw) < 4 {
		return raw
	}
	return raw[:4]
}
