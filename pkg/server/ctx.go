// Package server defines the per-request context and middleware contract
// shared by page and API handlers.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
)

// Ctx carries request-scoped state through a render or API call.
//
// A fresh Ctx is created per request and never shared between requests,
// so implementations need no locking.
type Ctx interface {
	// Request info

	// Request returns the underlying HTTP request.
	Request() *http.Request

	// Path returns the URL path.
	Path() string

	// Method returns the HTTP method.
	Method() string

	// Query returns the URL query parameters as url.Values.
	Query() url.Values

	// QueryParam returns a single query parameter value by key.
	// Returns an empty string if the key is not present.
	QueryParam(key string) string

	// Param returns a route parameter by key.
	Param(key string) string

	// Header returns a request header value.
	Header(key string) string

	// Cookie returns a cookie by name.
	Cookie(name string) (*http.Cookie, error)

	// Response control

	// Status sets the HTTP response status code. The last call before
	// the handler returns wins; a zero status means the server picks
	// the default for the outcome.
	Status(code int)

	// SetHeader sets a response header.
	SetHeader(key, value string)

	// SetCookie adds a Set-Cookie header to the response.
	SetCookie(cookie *http.Cookie)

	// Logging

	// Logger returns the request-scoped logger.
	Logger() *slog.Logger

	// Request-scoped values

	// SetValue stores a request-scoped value. Middleware uses this to
	// pass data to handlers further down the chain.
	SetValue(key, value any)

	// Value retrieves a request-scoped value.
	Value(key any) any

	// Context propagation

	// StdContext returns the request's context.Context.
	StdContext() context.Context
}

// requestCtx is the Ctx used for both page renders and API calls.
// Response control is recorded here and applied by the server after the
// handler returns, so handlers never touch the ResponseWriter directly.
type requestCtx struct {
	request *http.Request
	params  map[string]string
	logger  *slog.Logger
	values  map[any]any

	status  int
	headers http.Header
	cookies []*http.Cookie
}

// NewCtx creates a request context for the given request and route
// parameters.
func NewCtx(r *http.Request, params map[string]string, logger *slog.Logger) Ctx {
	return newRequestCtx(r, params, logger)
}

func newRequestCtx(r *http.Request, params map[string]string, logger *slog.Logger) *requestCtx {
	if params == nil {
		params = make(map[string]string)
	}
	return &requestCtx{
		request: r,
		params:  params,
		logger:  logger,
		values:  make(map[any]any),
		headers: make(http.Header),
	}
}

// Request info
func (c *requestCtx) Request() *http.Request       { return c.request }
func (c *requestCtx) Path() string                 { return c.request.URL.Path }
func (c *requestCtx) Method() string               { return c.request.Method }
func (c *requestCtx) Query() url.Values            { return c.request.URL.Query() }
func (c *requestCtx) QueryParam(key string) string { return c.request.URL.Query().Get(key) }
func (c *requestCtx) Param(key string) string      { return c.params[key] }
func (c *requestCtx) Header(key string) string     { return c.request.Header.Get(key) }
func (c *requestCtx) Cookie(name string) (*http.Cookie, error) {
	return c.request.Cookie(name)
}

// Response control
func (c *requestCtx) Status(code int)             { c.status = code }
func (c *requestCtx) SetHeader(key, value string) { c.headers.Set(key, value) }
func (c *requestCtx) SetCookie(cookie *http.Cookie) {
	c.cookies = append(c.cookies, cookie)
}

// Logging
func (c *requestCtx) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Request-scoped values
func (c *requestCtx) SetValue(key, value any) { c.values[key] = value }
func (c *requestCtx) Value(key any) any       { return c.values[key] }

// Context propagation
func (c *requestCtx) StdContext() context.Context { return c.request.Context() }

// StatusOf returns the status a handler set through the Ctx, or 0 if it
// never called Status. Returns 0 for foreign Ctx implementations.
func StatusOf(ctx Ctx) int {
	if c, ok := ctx.(*requestCtx); ok {
		return c.status
	}
	return 0
}

// ApplyResponse copies headers and cookies recorded on the Ctx to the
// ResponseWriter. It must be called before the status line is written.
func ApplyResponse(ctx Ctx, w http.ResponseWriter) {
	c, ok := ctx.(*requestCtx)
	if !ok {
		return
	}
	for key, vals := range c.headers {
		for _, v := range vals {
			w.Header().Add(key, v)
		}
	}
	for _, cookie := range c.cookies {
		http.SetCookie(w, cookie)
	}
}
