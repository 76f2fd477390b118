package router

import "strings"

// routeNode is a node in the route tree.
type routeNode struct {
	// segment is the path segment this node matches
	segment string

	// isParam indicates this is a parameter segment (:slug)
	isParam bool

	// isCatchAll indicates this is a catch-all segment (*rest)
	isCatchAll bool

	// paramName is the parameter name (without : or *)
	paramName string

	// handlers
	view        View
	title       string
	apiHandlers map[string]APIHandler // method -> handler

	// children are static segment children
	children []*routeNode

	// paramChild is the dynamic parameter child (:slug)
	paramChild *routeNode

	// catchAllChild is the catch-all child (*rest)
	catchAllChild *routeNode
}

func newRouteNode(segment string) *routeNode {
	return &routeNode{segment: segment}
}

// findChild finds a child node with an exact segment match.
func (n *routeNode) findChild(segment string) *routeNode {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// addChild adds or retrieves a child node for the given segment.
func (n *routeNode) addChild(segment string) *routeNode {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := newRouteNode(segment)
	n.children = append(n.children, child)
	return child
}

// addParamChild sets the parameter child node.
func (n *routeNode) addParamChild(name string) *routeNode {
	if n.paramChild != nil {
		return n.paramChild
	}
	child := newRouteNode("")
	child.isParam = true
	child.paramName = name
	n.paramChild = child
	return child
}

// addCatchAllChild sets the catch-all child node.
func (n *routeNode) addCatchAllChild(name string) *routeNode {
	if n.catchAllChild != nil {
		return n.catchAllChild
	}
	child := newRouteNode("")
	child.isCatchAll = true
	child.paramName = name
	n.catchAllChild = child
	return child
}

// insertRoute adds a route pattern to the tree and returns the leaf.
func (n *routeNode) insertRoute(pattern string) *routeNode {
	segments := splitPath(pattern)
	current := n

	for _, seg := range segments {
		if strings.HasPrefix(seg, "*") {
			// Catch-all consumes the rest of the path
			current = current.addCatchAllChild(seg[1:])
			break
		} else if strings.HasPrefix(seg, ":") {
			current = current.addParamChild(seg[1:])
		} else {
			current = current.addChild(seg)
		}
	}

	return current
}

// match finds a node matching the given path segments, filling params
// as it descends. Static children win over the parameter child, which
// wins over the catch-all; failed parameter descents backtrack.
func (n *routeNode) match(segments []string, params Params) (*routeNode, bool) {
	if len(segments) == 0 {
		if n.view != nil || n.apiHandlers != nil {
			return n, true
		}
		return nil, false
	}

	segment := segments[0]
	remaining := segments[1:]

	// Try exact match first
	if child := n.findChild(segment); child != nil {
		if node, ok := child.match(remaining, params); ok {
			return node, true
		}
	}

	// Try parameter match
	if n.paramChild != nil {
		params[n.paramChild.paramName] = segment
		if node, ok := n.paramChild.match(remaining, params); ok {
			return node, true
		}
		// Backtrack on failure
		delete(params, n.paramChild.paramName)
	}

	// Try catch-all match
	if n.catchAllChild != nil {
		all := append([]string{segment}, remaining...)
		params[n.catchAllChild.paramName] = strings.Join(all, "/")
		return n.catchAllChild, true
	}

	return nil, false
}

// splitPath splits a path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
