// Package router matches request paths against a fixed route table.
//
// The table is built once by New and never mutated afterwards, so it
// can be shared freely between the render server and the hydration
// bootstrap without locking. Both sides must hold the same table:
// parameter extraction has to agree byte-for-byte for hydration to
// reconcile cleanly.
package router

import (
	"fmt"
	"sort"
)

// Route is a single entry for New. Construct with Page, API or NotFound.
type Route struct {
	pattern  string
	method   string
	title    string
	view     View
	api      APIHandler
	fallback bool
}

// Page declares a page route. Patterns use :name for dynamic segments
// and *name for a trailing catch-all.
func Page(pattern, title string, view View) Route {
	return Route{pattern: pattern, title: title, view: view}
}

// API declares a JSON API route for a single HTTP method.
func API(method, pattern string, handler APIHandler) Route {
	return Route{pattern: pattern, method: method, api: handler}
}

// NotFound declares the fallback view rendered for unmatched paths.
func NotFound(view View) Route {
	return Route{view: view, fallback: true}
}

// Table is an immutable route table.
type Table struct {
	root     *routeNode
	notFound View
	routes   []RouteInfo
}

// New builds a route table from the given routes. Registering two page
// routes or two same-method API routes on one pattern panics; the
// table is built once at startup, so a conflict is a programming error.
func New(routes ...Route) *Table {
	t := &Table{root: newRouteNode("")}

	for _, route := range routes {
		switch {
		case route.fallback:
			if t.notFound != nil {
				panic("router: duplicate NotFound route")
			}
			t.notFound = route.view
		case route.api != nil:
			node := t.root.insertRoute(route.pattern)
			if node.apiHandlers == nil {
				node.apiHandlers = make(map[string]APIHandler)
			}
			if _, exists := node.apiHandlers[route.method]; exists {
				panic(fmt.Sprintf("router: duplicate route %s %s", route.method, route.pattern))
			}
			node.apiHandlers[route.method] = route.api
			t.routes = append(t.routes, RouteInfo{Method: route.method, Pattern: route.pattern})
		case route.view != nil:
			node := t.root.insertRoute(route.pattern)
			if node.view != nil {
				panic(fmt.Sprintf("router: duplicate route %s", route.pattern))
			}
			node.view = route.view
			node.title = route.title
			t.routes = append(t.routes, RouteInfo{Method: "PAGE", Pattern: route.pattern, Title: route.title})
		default:
			panic(fmt.Sprintf("router: route %q has no handler", route.pattern))
		}
	}

	sort.Slice(t.routes, func(i, j int) bool {
		if t.routes[i].Pattern != t.routes[j].Pattern {
			return t.routes[i].Pattern < t.routes[j].Pattern
		}
		return t.routes[i].Method < t.routes[j].Method
	})

	return t
}

// Match finds the route for a method and path. Page routes match any
// method; API routes match their registered method only.
func (t *Table) Match(method, path string) (*Match, bool) {
	params := make(Params)

	node, ok := t.root.match(splitPath(path), params)
	if !ok {
		return nil, false
	}

	if node.apiHandlers != nil {
		handler, exists := node.apiHandlers[method]
		if !exists {
			return nil, false
		}
		return &Match{Params: params, API: handler}, true
	}

	return &Match{Params: params, View: node.view, Title: node.title}, true
}

// NotFound returns the fallback view, or nil if none was registered.
func (t *Table) NotFound() View {
	return t.notFound
}

// Routes lists the registered routes sorted by pattern.
func (t *Table) Routes() []RouteInfo {
	out := make([]RouteInfo, len(t.routes))
	copy(out, t.routes)
	return out
}
