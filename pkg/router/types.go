package router

import (
	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

// Params holds the path parameters extracted during matching.
type Params map[string]string

// View renders a page as a pure function of its route parameters.
// Views must not read mutable shared state; the server and the
// hydration bootstrap both call them and expect identical trees for
// identical parameters.
type View func(ctx server.Ctx, params Params) *vdom.VNode

// APIHandler handles a JSON API request. body is the decoded request
// body (nil when the request carries none); the returned value is
// encoded as the JSON response.
type APIHandler func(ctx server.Ctx, body map[string]any) (any, error)

// Match is the result of matching a path against the table.
// Exactly one of View and API is set.
type Match struct {
	// Params are the extracted route parameters.
	Params Params

	// View is the matched page view, for page routes.
	View View

	// Title is the page title registered with the view.
	Title string

	// API is the matched handler, for API routes.
	API APIHandler
}

// RouteInfo describes a registered route, for listings.
type RouteInfo struct {
	Method  string // HTTP method, or "PAGE" for page routes
	Pattern string
	Title   string
}
