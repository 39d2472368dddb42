package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"posterkit/internal/normalize"
	"posterkit/internal/services"
)

const suggestionLimit = 5

// ViewState represents the current view in the picker.
type ViewState int

const (
	SearchingView ViewState = iota
	PickView
	FetchView
	PosterView
	ErrorView
)

// Model represents the picker application state: search for the query,
// choose among the suggested albums, render the resulting poster.
type Model struct {
	ctx     context.Context
	catalog services.Catalog
	query   string
	view    ViewState
	albums  list.Model
	poster  normalize.Poster
	err     error
	width   int
	height  int
}

// NewModel creates the picker model for the given query.
func NewModel(ctx context.Context, catalog services.Catalog, query string) Model {
	albums := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	albums.Title = fmt.Sprintf("Albums matching %q", query)
	albums.SetShowStatusBar(false)

	return Model{
		ctx:     ctx,
		catalog: catalog,
		query:   query,
		view:    SearchingView,
		albums:  albums,
	}
}

// Init starts the suggestion search.
func (m Model) Init() tea.Cmd {
	return m.fetchAlbums()
}

// fetchAlbums acquires a token and searches the catalog for candidates.
func (m Model) fetchAlbums() tea.Cmd {
	return func() tea.Msg {
		token, err := m.catalog.AcquireToken(m.ctx)
		if err != nil {
			return albumsFetchedMsg(nil, err)
		}

		albums, err := m.catalog.SearchAlbums(m.ctx, token, m.query, suggestionLimit)
		return albumsFetchedMsg(albums, err)
	}
}

// fetchPoster fetches the detail record for the chosen album and projects it.
func (m Model) fetchPoster(albumID string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.catalog.AcquireToken(m.ctx)
		if err != nil {
			return posterFetchedMsg(normalize.Poster{}, err)
		}

		detail, err := m.catalog.Album(m.ctx, token, albumID)
		if err != nil {
			return posterFetchedMsg(normalize.Poster{}, err)
		}

		return posterFetchedMsg(normalize.ProjectAlbum(detail), nil)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.albums.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case Msg:
		return m.handleMsg(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.view != PickView {
				return m, tea.Quit
			}
		case "enter":
			if m.view == PickView {
				if item, ok := m.albums.SelectedItem().(albumItem); ok {
					m.view = FetchView
					return m, m.fetchPoster(item.album.ID)
				}
			}
		}
	}

	if m.view == PickView {
		var cmd tea.Cmd
		m.albums, cmd = m.albums.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgAlbumsFetched:
		data := msg.data.(albumsFetched)
		if data.err != nil {
			m.err = data.err
			m.view = ErrorView
			return m, nil
		}

		if len(data.albums) == 0 {
			m.err = fmt.Errorf("no albums matched %q", m.query)
			m.view = ErrorView
			return m, nil
		}

		items := make([]list.Item, 0, len(data.albums))
		for _, album := range data.albums {
			items = append(items, albumItem{album: album})
		}

		m.view = PickView
		return m, m.albums.SetItems(items)

	case MsgPosterFetched:
		data := msg.data.(posterFetched)
		if data.err != nil {
			m.err = data.err
			m.view = ErrorView
			return m, nil
		}

		m.poster = data.poster
		m.view = PosterView
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case SearchingView:
		return styles.title.Render("Searching...") + "\n" + styles.help.Render("ctrl+c to quit")
	case PickView:
		return m.albums.View()
	case FetchView:
		return styles.title.Render("Fetching album...") + "\n" + styles.help.Render("ctrl+c to quit")
	case PosterView:
		return m.renderPoster() + "\n" + styles.help.Render("q to quit")
	case ErrorView:
		return styles.err.Render(fmt.Sprintf("✗ %v", m.err)) + "\n" + styles.help.Render("q to quit")
	}

	return ""
}

// Poster returns the selected poster once the picker reaches [PosterView].
func (m Model) Poster() (normalize.Poster, bool) {
	return m.poster, m.view == PosterView
}

func (m Model) renderPoster() string {
	var b strings.Builder

	b.WriteString(styles.title.Render(m.poster.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styles.ok.Render("Artist:"), m.poster.Artist))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.ok.Render("Released:"), m.poster.ReleaseDate))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.ok.Render("Label:"), m.poster.Label))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.ok.Render("Length:"), m.poster.Length))

	if len(m.poster.Tracks) > 0 {
		b.WriteString("\n")
		for i, track := range m.poster.Tracks {
			b.WriteString(fmt.Sprintf("%2d. %s\n", i+1, track))
		}
	}

	return styles.frame.Render(b.String())
}
