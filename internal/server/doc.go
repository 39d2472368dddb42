// Package server provides HTTP routing, middleware, and the request handlers for the album poster service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Poster Handler
//
// [PosterHandler] serves the whole public surface:
//
//	GET  /         → landing page (html/template via internal/web)
//	POST /search   → best album match, flattened into poster fields
//	POST /suggest  → up to five {name, artist} autocomplete candidates
//	GET  /healthz  → liveness probe
//
// Requests are stateless and one-shot: each one acquires a fresh catalog
// token, performs one or two sequential upstream calls, and projects the
// result through internal/normalize. Nothing is shared between requests.
//
// # Error Responses
//
// Zero search matches answer 404 {"error": "Album not found"}. Credential
// exchange and upstream catalog failures answer 502 with a structured error
// body rather than an opaque server fault; malformed request JSON answers 400.
//
// # Middleware Stack
//
// The serve command composes [RequestID], [AccessLog], [Recover], and
// [RateLimit] around the handler. Rate limiting guards this service's own
// surface with a token bucket; the upstream API's limits are not handled here.
package server
