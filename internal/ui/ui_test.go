package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"posterkit/internal/services"
	mocks "posterkit/internal/testing"
)

func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command to run")
	}

	model, next := m.Update(cmd())
	return model.(Model), next
}

func TestPickerModel(t *testing.T) {
	albums := []services.SpotifyAlbum{
		{ID: "a1", Name: "Abbey Road", Artists: []services.SpotifyArtist{{Name: "The Beatles"}}, ReleaseDate: "1969-09-26"},
		{ID: "a2", Name: "Abbey Road (Remaster)", Artists: []services.SpotifyArtist{{Name: "The Beatles"}}, ReleaseDate: "2019"},
	}

	detail := &services.SpotifyAlbumDetail{
		ID:          "a1",
		Name:        "Abbey Road",
		Artists:     []services.SpotifyArtist{{Name: "The Beatles"}},
		ReleaseDate: "1969-09-26",
		Label:       "Apple Records",
	}

	t.Run("Search To Poster", func(t *testing.T) {
		catalog := &mocks.MockCatalog{Albums: albums, Detail: detail}
		m := NewModel(context.Background(), catalog, "abbey road")

		if m.view != SearchingView {
			t.Fatalf("expected initial SearchingView, got %v", m.view)
		}

		m, _ = run(t, m, m.Init())
		if m.view != PickView {
			t.Fatalf("expected PickView after fetch, got %v", m.view)
		}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = model.(Model)
		if m.view != FetchView {
			t.Fatalf("expected FetchView after selection, got %v", m.view)
		}

		m, _ = run(t, m, cmd)
		if m.view != PosterView {
			t.Fatalf("expected PosterView, got %v", m.view)
		}

		poster, ok := m.Poster()
		if !ok {
			t.Fatal("expected poster to be available")
		}
		if poster.Name != "Abbey Road" || poster.Artist != "The Beatles" {
			t.Errorf("unexpected poster %+v", poster)
		}

		view := m.View()
		if !strings.Contains(view, "Abbey Road") || !strings.Contains(view, "Apple Records") {
			t.Errorf("expected rendered poster, got:\n%s", view)
		}
	})

	t.Run("No Matches", func(t *testing.T) {
		catalog := &mocks.MockCatalog{}
		m := NewModel(context.Background(), catalog, "zzzznoalbum")

		m, _ = run(t, m, m.Init())
		if m.view != ErrorView {
			t.Fatalf("expected ErrorView for empty result, got %v", m.view)
		}
		if !strings.Contains(m.View(), "zzzznoalbum") {
			t.Errorf("expected query in error view, got:\n%s", m.View())
		}
	})

	t.Run("Search Failure", func(t *testing.T) {
		catalog := &mocks.MockCatalog{SearchErr: errors.New("catalog down")}
		m := NewModel(context.Background(), catalog, "anything")

		m, _ = run(t, m, m.Init())
		if m.view != ErrorView {
			t.Fatalf("expected ErrorView for search failure, got %v", m.view)
		}
	})

	t.Run("Quit Keys", func(t *testing.T) {
		catalog := &mocks.MockCatalog{Albums: albums, Detail: detail}
		m := NewModel(context.Background(), catalog, "abbey road")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatal("expected quit command for ctrl+c")
		}
	})
}
