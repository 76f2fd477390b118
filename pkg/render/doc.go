// Package render provides server-side rendering for Strata views.
//
// The render package converts VNode trees into HTML strings and wraps
// the result in the page document, handling:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Hydration ID assignment for interactive elements
//   - Document assembly around the mount-point element
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	markup, err := renderer.RenderToString(node)
//
// # Document Assembly
//
// Shell wraps rendered markup in the full document:
//
//	shell := render.Shell{StyleSheets: []string{"/styles.css"}, Scripts: []string{"/bundle.js"}}
//	doc := shell.Assemble(markup, "My Page")
//
// # Hydration IDs
//
// Elements with event handlers automatically receive a data-hid
// attribute. The handlers are collected during rendering and can be
// retrieved via Handlers(); the hydration bootstrap binds them to the
// matching DOM nodes.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted
// using KindRaw nodes, but should only be used with trusted content.
package render
