// Package strata is a minimal server-side rendering pipeline: page views
// are pure functions of their route parameters, rendered to HTML on the
// server and hydrated in place on the client.
//
// The root package ties the pieces together:
//
//   - pkg/vdom: the node tree and element DSL views are written in
//   - pkg/router: the immutable route table shared by server and client
//   - pkg/render: deterministic HTML rendering and document assembly
//   - pkg/hydrate: attaching behavior to server-rendered markup
//
// A complete application:
//
//	table := router.New(
//	    router.Page("/", "Home", HomePage),
//	    router.NotFound(NotFoundPage),
//	)
//	app := strata.New(strata.DefaultConfig(), table)
//	http.ListenAndServe(":"+strata.PortFromEnv(), app)
package strata

import (
	"github.com/strata-web/strata/pkg/router"
	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

// Core types re-exported so application code imports one package.

// Ctx carries request-scoped state through views and API handlers.
type Ctx = server.Ctx

// Middleware wraps request handling; see server.Middleware.
type Middleware = server.Middleware

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc = server.MiddlewareFunc

// VNode is a node in the view tree.
type VNode = vdom.VNode

// Props holds attributes and event handlers.
type Props = vdom.Props

// Params holds route parameters extracted during matching.
type Params = router.Params

// View renders a page as a pure function of its route parameters.
type View = router.View

// APIHandler handles a JSON API request.
type APIHandler = router.APIHandler
