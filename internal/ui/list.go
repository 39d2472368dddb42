package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"posterkit/internal/services"
)

var _ list.Item = albumItem{}

// albumItem wraps [services.SpotifyAlbum] to implement [list.Item].
type albumItem struct {
	album services.SpotifyAlbum
}

func (i albumItem) FilterValue() string { return i.album.Name }
func (i albumItem) Title() string       { return i.album.Name }
func (i albumItem) Description() string {
	desc := "Unknown Artist"
	if len(i.album.Artists) > 0 {
		desc = i.album.Artists[0].Name
	}
	if len(i.album.ReleaseDate) >= 4 {
		desc += " • " + i.album.ReleaseDate[:4]
	}
	return desc
}
