// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"

	"posterkit/internal/services"
)

// SearchCall records the arguments of one MockCatalog.SearchAlbums invocation.
type SearchCall struct {
	Token string
	Query string
	Limit int
}

// MockCatalog is a configurable test double for [services.Catalog].
type MockCatalog struct {
	Token     string
	TokenErr  error
	Albums    []services.SpotifyAlbum
	SearchErr error
	Detail    *services.SpotifyAlbumDetail
	DetailErr error

	TokenCalls  int
	SearchCalls []SearchCall
	AlbumCalls  []string
}

var _ services.Catalog = (*MockCatalog)(nil)

func (m *MockCatalog) AcquireToken(ctx context.Context) (string, error) {
	m.TokenCalls++
	if m.TokenErr != nil {
		return "", m.TokenErr
	}
	if m.Token == "" {
		return "mock_token", nil
	}
	return m.Token, nil
}

func (m *MockCatalog) SearchAlbums(ctx context.Context, token, query string, limit int) ([]services.SpotifyAlbum, error) {
	m.SearchCalls = append(m.SearchCalls, SearchCall{Token: token, Query: query, Limit: limit})
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}

	if limit > 0 && limit < len(m.Albums) {
		return m.Albums[:limit], nil
	}
	return m.Albums, nil
}

func (m *MockCatalog) Album(ctx context.Context, token, albumID string) (*services.SpotifyAlbumDetail, error) {
	m.AlbumCalls = append(m.AlbumCalls, albumID)
	if m.DetailErr != nil {
		return nil, m.DetailErr
	}
	if m.Detail == nil {
		return nil, errors.New("no detail configured")
	}
	return m.Detail, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
