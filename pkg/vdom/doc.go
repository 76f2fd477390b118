// Package vdom provides the abstract view tree for Strata.
//
// A view is a pure function of its route parameters that returns a *VNode.
// The tree is immutable per render: the server renders it to markup once
// per request, and the hydration bootstrap re-renders the same view from
// the same parameters to take ownership of the pre-rendered markup.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes and event handlers.
// Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive
// elements (those with event handlers). These IDs link server-rendered
// markup to the handlers bound during hydration.
package vdom
