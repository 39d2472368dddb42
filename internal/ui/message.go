package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"posterkit/internal/normalize"
	"posterkit/internal/services"
)

// MsgKind enumerates all message types in the picker.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var _ tea.Msg = Msg{}

const (
	MsgAlbumsFetched MsgKind = iota
	MsgPosterFetched
)

type albumsFetched struct {
	albums []services.SpotifyAlbum
	err    error
}

type posterFetched struct {
	poster normalize.Poster
	err    error
}

// albumsFetchedMsg is the constructor for [MsgAlbumsFetched]
func albumsFetchedMsg(albums []services.SpotifyAlbum, err error) Msg {
	return Msg{kind: MsgAlbumsFetched, data: albumsFetched{albums, err}}
}

// posterFetchedMsg is the constructor for [MsgPosterFetched]
func posterFetchedMsg(poster normalize.Poster, err error) Msg {
	return Msg{kind: MsgPosterFetched, data: posterFetched{poster, err}}
}
