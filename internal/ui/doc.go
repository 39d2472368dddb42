// Package ui implements the interactive album picker built on [bubbletea].
//
// The picker mirrors the web frontend's suggest-then-search flow in the
// terminal: a query produces up to five candidates in a [list.Model], the
// selection triggers a detail fetch, and the projected poster renders with
// [lipgloss] styling.
//
// State transitions are linear: SearchingView → PickView → FetchView →
// PosterView, with ErrorView reachable from any fetch. Messages follow the
// Elm-style union pattern ([Msg] with a kind tag) and all catalog I/O happens
// inside [tea.Cmd] closures.
package ui
