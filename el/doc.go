// Package el re-exports the vdom element DSL for dot-importing in view
// code:
//
//	import . "github.com/strata-web/strata/el"
//
//	func HomePage(ctx strata.Ctx, params strata.Params) *VNode {
//	    return Div(Class("home"),
//	        H1(Text("Welcome")),
//	    )
//	}
//
// Dot-importing a package is unusual in Go; it is offered here because
// views are dominated by element constructors and the vdom. prefix
// drowns out the markup structure.
package el
