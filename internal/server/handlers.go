package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"posterkit/internal/normalize"
	"posterkit/internal/services"
	"posterkit/internal/shared"
	"posterkit/internal/web"
)

const (
	searchLimit  = 1
	suggestLimit = 5
)

// searchRequest is the body of POST /search and POST /suggest.
type searchRequest struct {
	Query string `json:"query"`
}

// suggestResponse wraps the suggestion list for POST /suggest.
type suggestResponse struct {
	Suggestions []normalize.Suggestion `json:"suggestions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// PosterHandler serves the album poster endpoints: the landing page, album
// search, and autocomplete suggestions. Implements [Handler] for registration
// with a [Router].
type PosterHandler struct {
	catalog  services.Catalog
	renderer *web.Renderer
	logger   *log.Logger
}

// NewPosterHandler creates a [PosterHandler] backed by the given catalog.
func NewPosterHandler(catalog services.Catalog, renderer *web.Renderer, logger *log.Logger) *PosterHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &PosterHandler{
		catalog:  catalog,
		renderer: renderer,
		logger:   logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *PosterHandler) Routes() []string {
	return []string{"/", "/search", "/suggest", "/healthz"}
}

// ServeHTTP dispatches to the endpoint handlers with method filtering.
func (h *PosterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		h.requireMethod(w, r, http.MethodGet, h.index)
	case "/search":
		h.requireMethod(w, r, http.MethodPost, h.search)
	case "/suggest":
		h.requireMethod(w, r, http.MethodPost, h.suggest)
	case "/healthz":
		h.requireMethod(w, r, http.MethodGet, h.health)
	default:
		// The "/" mux pattern matches every unregistered path.
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (h *PosterHandler) requireMethod(w http.ResponseWriter, r *http.Request, method string, next http.HandlerFunc) {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	next(w, r)
}

// index renders the poster maker landing page.
func (h *PosterHandler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Landing(w); err != nil {
		h.logger.Error("failed to render landing page", "error", err)
	}
}

func (h *PosterHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// search looks up the single best album match for the query and responds with
// the flattened poster fields.
//
// One token exchange covers both the search and the follow-up detail fetch.
func (h *PosterHandler) search(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	token, err := h.catalog.AcquireToken(ctx)
	if err != nil {
		h.upstreamError(w, r, "token exchange failed", err)
		return
	}

	items, err := h.catalog.SearchAlbums(ctx, token, req.Query, searchLimit)
	if err != nil {
		h.upstreamError(w, r, "album search failed", err)
		return
	}

	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "Album not found")
		return
	}

	detail, err := h.catalog.Album(ctx, token, items[0].ID)
	if err != nil {
		h.upstreamError(w, r, "album lookup failed", err)
		return
	}

	writeJSON(w, http.StatusOK, normalize.ProjectAlbum(detail))
}

// suggest answers autocomplete queries with up to five name/artist pairs.
//
// Zero matches is a normal outcome: the response is still 200 with an empty list.
func (h *PosterHandler) suggest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	token, err := h.catalog.AcquireToken(ctx)
	if err != nil {
		h.upstreamError(w, r, "token exchange failed", err)
		return
	}

	items, err := h.catalog.SearchAlbums(ctx, token, req.Query, suggestLimit)
	if err != nil {
		h.upstreamError(w, r, "suggestion search failed", err)
		return
	}

	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: normalize.ProjectSuggestions(items)})
}

// decodeQuery parses the request body. An empty query is passed through to
// the upstream API rather than rejected here.
func (h *PosterHandler) decodeQuery(w http.ResponseWriter, r *http.Request) (searchRequest, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

// upstreamError maps catalog failures to a structured 502 response.
func (h *PosterHandler) upstreamError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message,
		"error", err,
		"request_id", RequestIDFromContext(r.Context()),
	)

	status := http.StatusBadGateway
	if errors.Is(err, shared.ErrAuthFailed) {
		message = "catalog authentication failed"
	} else {
		message = "catalog request failed"
	}

	writeError(w, status, message)
}
