package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"posterkit/internal/shared"
)

func newTokenServer(t *testing.T, accessToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse token request form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Errorf("expected grant_type client_credentials, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token": %q, "token_type": "Bearer", "expires_in": 3600}`, accessToken)
	}))
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		srv := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})

		if srv.Name() != "Spotify" {
			t.Errorf("expected service name 'Spotify', got %s", srv.Name())
		}

		if srv.creds.TokenURL != spotifyTokenURL {
			t.Errorf("expected default token URL, got %s", srv.creds.TokenURL)
		}

		if srv.baseURL != spotifyBaseURL {
			t.Errorf("expected default base URL, got %s", srv.baseURL)
		}

		t.Run("Empty Credentials Accepted", func(t *testing.T) {
			// Validation is deferred to the first token exchange.
			srv := NewSpotifyService(map[string]string{})
			if srv == nil {
				t.Fatal("expected service to be created without credentials")
			}
		})
	})

	t.Run("AcquireToken", func(t *testing.T) {
		t.Run("Fresh Token Per Call", func(t *testing.T) {
			tokenServer := newTokenServer(t, "test_access_token")
			defer tokenServer.Close()

			srv := NewSpotifyService(map[string]string{
				"client_id":     "id",
				"client_secret": "secret",
				"token_url":     tokenServer.URL,
			})

			for range 2 {
				token, err := srv.AcquireToken(context.Background())
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if token != "test_access_token" {
					t.Errorf("expected test_access_token, got %s", token)
				}
			}
		})

		t.Run("Upstream Failure", func(t *testing.T) {
			tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "invalid_client", http.StatusUnauthorized)
			}))
			defer tokenServer.Close()

			srv := NewSpotifyService(map[string]string{
				"client_id":     "id",
				"client_secret": "wrong",
				"token_url":     tokenServer.URL,
			})

			_, err := srv.AcquireToken(context.Background())
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("Missing Token Field", func(t *testing.T) {
			tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"token_type": "Bearer"}`)
			}))
			defer tokenServer.Close()

			srv := NewSpotifyService(map[string]string{
				"client_id":     "id",
				"client_secret": "secret",
				"token_url":     tokenServer.URL,
			})

			_, err := srv.AcquireToken(context.Background())
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed for tokenless response, got %v", err)
			}
		})
	})

	t.Run("SearchAlbums", func(t *testing.T) {
		apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/search" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok" {
				t.Errorf("expected bearer header, got %q", got)
			}

			q := r.URL.Query()
			if q.Get("type") != "album" {
				t.Errorf("expected type=album, got %q", q.Get("type"))
			}
			if q.Get("q") != "abbey road" {
				t.Errorf("expected q=abbey road, got %q", q.Get("q"))
			}
			if q.Get("limit") != "5" {
				t.Errorf("expected limit=5, got %q", q.Get("limit"))
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"albums": {"items": [
				{"id": "a1", "name": "Abbey Road", "artists": [{"name": "The Beatles"}], "release_date": "1969-09-26"},
				{"id": "a2", "name": "Abbey Road (Remaster)", "artists": [{"name": "The Beatles"}], "release_date": "2019"}
			]}}`)
		}))
		defer apiServer.Close()

		srv := NewSpotifyService(map[string]string{"api_url": apiServer.URL})

		albums, err := srv.SearchAlbums(context.Background(), "tok", "abbey road", 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(albums) != 2 {
			t.Fatalf("expected 2 albums, got %d", len(albums))
		}

		if albums[0].ID != "a1" || albums[0].Name != "Abbey Road" {
			t.Errorf("unexpected first album: %+v", albums[0])
		}

		if albums[0].Artists[0].Name != "The Beatles" {
			t.Errorf("unexpected artist: %+v", albums[0].Artists)
		}
	})

	t.Run("SearchAlbums Error Paths", func(t *testing.T) {
		t.Run("Upstream Status", func(t *testing.T) {
			apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			}))
			defer apiServer.Close()

			srv := NewSpotifyService(map[string]string{"api_url": apiServer.URL})
			_, err := srv.SearchAlbums(context.Background(), "tok", "anything", 1)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Malformed JSON", func(t *testing.T) {
			apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"albums": `)
			}))
			defer apiServer.Close()

			srv := NewSpotifyService(map[string]string{"api_url": apiServer.URL})
			_, err := srv.SearchAlbums(context.Background(), "tok", "anything", 1)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest for malformed JSON, got %v", err)
			}
		})
	})

	t.Run("Album", func(t *testing.T) {
		apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/albums/a1" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
				"id": "a1",
				"name": "Abbey Road",
				"artists": [{"name": "The Beatles"}],
				"images": [{"url": "https://img.example/a1.jpg", "height": 640, "width": 640}],
				"release_date": "1969-09-26",
				"label": "Apple Records",
				"tracks": {"items": [
					{"name": "Come Together", "duration_ms": 259000, "track_number": 1},
					{"name": "Something", "duration_ms": 183000, "track_number": 2}
				], "total": 2}
			}`)
		}))
		defer apiServer.Close()

		srv := NewSpotifyService(map[string]string{"api_url": apiServer.URL})

		detail, err := srv.Album(context.Background(), "tok", "a1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if detail.Label != "Apple Records" {
			t.Errorf("expected label Apple Records, got %s", detail.Label)
		}

		if len(detail.Tracks.Items) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(detail.Tracks.Items))
		}

		if detail.Tracks.Items[1].DurationMS != 183000 {
			t.Errorf("unexpected duration: %d", detail.Tracks.Items[1].DurationMS)
		}
	})
}
