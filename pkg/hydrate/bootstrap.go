// Package hydrate attaches behavior to a server-rendered document.
//
// The bootstrap mirrors what the client runtime does after page load: it
// locates the mount point, re-renders the matched view from the URL
// using the same route table the server used, reconciles the result
// against the existing markup, and binds event handlers by hydration ID.
// The pre-rendered DOM is kept; only mismatched subtrees are rebuilt.
package hydrate

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/strata-web/strata/pkg/render"
	"github.com/strata-web/strata/pkg/router"
	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

var (
	// ErrMountMissing means the document has no mount-point element.
	// This is fatal: there is nothing to attach to.
	ErrMountMissing = errors.New("hydrate: mount point not found")

	// ErrAlreadyHydrated means Hydrate was called twice on one document.
	ErrAlreadyHydrated = errors.New("hydrate: document already hydrated")

	// ErrNoRoute means the URL matched nothing and the table has no
	// fallback view.
	ErrNoRoute = errors.New("hydrate: no route matched and no fallback view")
)

// Options configures a Bootstrap.
type Options struct {
	// MountID overrides the mount-point element id.
	// Defaults to render.DefaultMountID.
	MountID string

	// Logger receives mismatch warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Bootstrap hydrates one server-rendered document.
type Bootstrap struct {
	doc     *html.Node
	mount   *html.Node
	table   *router.Table
	mountID string
	logger  *slog.Logger

	mu         sync.Mutex
	hydrated   bool
	markup     string
	mismatches int
	tree       *vdom.VNode
	handlers   map[string]map[string]any
}

// New parses the served document and locates the mount point.
// The table must be the same one the server rendered with; parameter
// extraction on both sides has to agree for reconciliation to be clean.
func New(document string, table *router.Table, opts Options) (*Bootstrap, error) {
	mountID := opts.MountID
	if mountID == "" {
		mountID = render.DefaultMountID
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("hydrate: parse document: %w", err)
	}

	mount := findByID(doc, mountID)
	if mount == nil {
		return nil, ErrMountMissing
	}

	return &Bootstrap{
		doc:     doc,
		mount:   mount,
		table:   table,
		mountID: mountID,
		logger:  logger,
	}, nil
}

// Hydrate re-renders the view for the given URL and attaches handlers.
// It is once-only: a second call returns ErrAlreadyHydrated.
func (b *Bootstrap) Hydrate(rawURL string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hydrated {
		return ErrAlreadyHydrated
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("hydrate: parse url: %w", err)
	}

	view, params, err := b.resolveView(req.URL.Path)
	if err != nil {
		return err
	}

	ctx := server.NewCtx(req, params, b.logger)
	node := view(ctx, params)
	if node == nil {
		return fmt.Errorf("hydrate: view returned nil for %s", req.URL.Path)
	}

	// Same renderer, same HID sequence as the server render. For a
	// mismatch-free document this markup is byte-identical to what the
	// server put inside the mount element.
	renderer := render.NewRenderer(render.RendererConfig{})
	markup, err := renderer.RenderToString(node)
	if err != nil {
		return fmt.Errorf("hydrate: render view: %w", err)
	}

	clientNodes, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("hydrate: parse rendered markup: %w", err)
	}

	b.mismatches = b.reconcile(b.mount, clientNodes, "/"+b.mountID)
	b.markup = markup
	b.tree = node
	b.handlers = renderer.Handlers()
	b.hydrated = true

	b.logger.Debug("hydration complete",
		"url", rawURL,
		"interactive", vdom.CountInteractive(node),
		"mismatches", b.mismatches,
	)
	return nil
}

// resolveView matches the path against the table, falling back to the
// not-found view exactly as the server does.
func (b *Bootstrap) resolveView(path string) (router.View, router.Params, error) {
	if match, ok := b.table.Match(http.MethodGet, path); ok && match.View != nil {
		return match.View, match.Params, nil
	}
	if view := b.table.NotFound(); view != nil {
		return view, router.Params{}, nil
	}
	return nil, nil, ErrNoRoute
}

// reconcile walks the DOM under domParent against the freshly rendered
// nodes. A mismatching subtree is discarded and rebuilt from the client
// render, with a warning; matching subtrees keep their existing nodes.
// Returns the number of subtrees rebuilt.
func (b *Bootstrap) reconcile(domParent *html.Node, clientKids []*html.Node, where string) int {
	domKids := elementChildren(domParent)

	if len(domKids) != len(clientKids) {
		b.warnMismatch(where, fmt.Sprintf("child count %d != %d", len(domKids), len(clientKids)))
		replaceChildren(domParent, clientKids)
		return 1
	}

	mismatches := 0
	for i, domKid := range domKids {
		clientKid := clientKids[i]
		childWhere := fmt.Sprintf("%s/%s[%d]", where, nodeLabel(clientKid), i)

		if !sameNode(domKid, clientKid) {
			b.warnMismatch(childWhere, describeNode(domKid)+" != "+describeNode(clientKid))
			domParent.InsertBefore(detachedClone(clientKid), domKid)
			domParent.RemoveChild(domKid)
			mismatches++
			continue
		}

		if domKid.Type == html.ElementNode {
			mismatches += b.reconcile(domKid, elementChildren(clientKid), childWhere)
		}
	}
	return mismatches
}

func (b *Bootstrap) warnMismatch(where, detail string) {
	b.logger.Warn("hydration mismatch, rebuilding subtree", "at", where, "detail", detail)
}

// Hydrated reports whether Hydrate has completed.
func (b *Bootstrap) Hydrated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hydrated
}

// Mismatches returns the number of subtrees rebuilt during hydration.
// Zero means the server markup was adopted untouched.
func (b *Bootstrap) Mismatches() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mismatches
}

// Markup returns the client-side render produced during hydration.
func (b *Bootstrap) Markup() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markup
}

// HIDs lists the hydration IDs assigned in the rendered tree, sorted.
func (b *Bootstrap) HIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return sortedKeys(vdom.CollectHIDs(b.tree))
}

// Trigger invokes the handler bound to the given hydration ID and event
// name ("click", "input"). It stands in for a browser dispatching the
// event to the hydrated element.
func (b *Bootstrap) Trigger(hid, event string) error {
	b.mu.Lock()
	if !b.hydrated {
		b.mu.Unlock()
		return errors.New("hydrate: not hydrated")
	}
	target := vdom.FindByHID(b.tree, hid)
	handler, ok := b.handlers[hid]["on"+strings.ToLower(event)]
	b.mu.Unlock()

	if target == nil {
		return fmt.Errorf("hydrate: no element with hydration id %s", hid)
	}
	if !ok {
		return fmt.Errorf("hydrate: no %s handler bound to <%s> %s", event, target.Tag, hid)
	}

	switch fn := handler.(type) {
	case func():
		fn()
		return nil
	case func(any):
		fn(nil)
		return nil
	default:
		return fmt.Errorf("hydrate: unsupported handler type %T on %s", handler, hid)
	}
}

// parseFragment parses rendered markup in a div context, matching how
// the markup sits inside the mount element.
func parseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	// Comparison ignores whitespace-only text, so filter here too.
	wrapper := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		wrapper.AppendChild(n)
	}
	return elementChildren(wrapper), nil
}

func nodeLabel(n *html.Node) string {
	if n.Type == html.ElementNode {
		return n.Data
	}
	return "#text"
}

func describeNode(n *html.Node) string {
	if n.Type == html.ElementNode {
		return "<" + n.Data + ">"
	}
	return fmt.Sprintf("%q", n.Data)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
