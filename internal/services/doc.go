// Package services defines the [Catalog] interface for album catalog providers and implements it for the Spotify Web API.
//
// # Catalog Interface
//
// The HTTP facade and CLI depend only on [Catalog], so handlers can be tested
// against a stub catalog without touching the network.
//
// # Token Provider
//
// [SpotifyService.AcquireToken] performs the OAuth2 client credentials
// exchange through [clientcredentials.Config]. Tokens are deliberately never
// cached or checked for expiry: each inbound request acquires a fresh token
// and threads it through the one or two catalog calls it makes.
//
// # Spotify Implementation
//
// [SpotifyService] issues bearer-authenticated GET requests against the
// search and album endpoints and decodes the responses into typed structs
// ([SpotifyAlbum], [SpotifyAlbumDetail]).
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrAuthFailed] : credential exchange failed or returned no token
//   - [shared.ErrAPIRequest] : upstream call failed, non-2xx status, or malformed JSON
//
// Both endpoints can be redirected via the "token_url" / "api_url" credential
// keys, which the tests use to point the service at httptest servers.
package services
