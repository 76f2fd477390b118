package hydrate

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/strata-web/strata/pkg/render"
	"github.com/strata-web/strata/pkg/router"
	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

func stdRequest(path string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, path, nil)
}

// testSite builds a small table plus a counter the button handler
// mutates, standing in for application state.
func testSite() (*router.Table, *int) {
	clicks := new(int)

	home := func(ctx server.Ctx, params router.Params) *vdom.VNode {
		return vdom.Main(
			vdom.H1(vdom.Text("Home")),
			vdom.Button(vdom.OnClick(func() { *clicks++ }), vdom.Text("+1")),
		)
	}
	blog := func(ctx server.Ctx, params router.Params) *vdom.VNode {
		return vdom.Main(vdom.H1(vdom.Text(params["slug"])))
	}
	notFound := func(ctx server.Ctx, params router.Params) *vdom.VNode {
		return vdom.Main(vdom.H1(vdom.Text("Page Not Found")))
	}

	return router.New(
		router.Page("/", "Home", home),
		router.Page("/blog/:slug", "Blog", blog),
		router.NotFound(notFound),
	), clicks
}

// serveDocument renders a path the way the render server does: match,
// render, assemble.
func serveDocument(t *testing.T, table *router.Table, path string) string {
	t.Helper()

	match, ok := table.Match("GET", path)
	view := table.NotFound()
	params := router.Params{}
	if ok {
		view = match.View
		params = match.Params
	}

	req, _ := stdRequest(path)
	node := view(server.NewCtx(req, params, nil), params)

	markup, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return render.Shell{}.Assemble(markup, "Test")
}

func TestHydrateCleanDocument(t *testing.T) {
	table, _ := testSite()
	doc := serveDocument(t, table, "/")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Hydrated() {
		t.Error("Hydrated before Hydrate call")
	}

	if err := b.Hydrate("/"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if !b.Hydrated() {
		t.Error("Hydrated = false after Hydrate")
	}
	if n := b.Mismatches(); n != 0 {
		t.Errorf("Mismatches = %d, want 0 for untouched document", n)
	}
}

func TestHydrateOnceOnly(t *testing.T) {
	table, _ := testSite()
	doc := serveDocument(t, table, "/")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Hydrate("/"); err != nil {
		t.Fatalf("first Hydrate: %v", err)
	}
	if err := b.Hydrate("/"); !errors.Is(err, ErrAlreadyHydrated) {
		t.Errorf("second Hydrate err = %v, want ErrAlreadyHydrated", err)
	}
}

func TestHydrateByteIdentity(t *testing.T) {
	table, _ := testSite()

	match, _ := table.Match("GET", "/blog/intro")
	req, _ := stdRequest("/blog/intro")
	node := match.View(server.NewCtx(req, match.Params, nil), match.Params)
	serverMarkup, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	doc := render.Shell{}.Assemble(serverMarkup, "Blog")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Hydrate("/blog/intro"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	if b.Markup() != serverMarkup {
		t.Errorf("client render differs from server render:\nserver: %s\nclient: %s", serverMarkup, b.Markup())
	}
	if n := b.Mismatches(); n != 0 {
		t.Errorf("Mismatches = %d, want 0", n)
	}
}

func TestHydrateMountMissing(t *testing.T) {
	table, _ := testSite()

	_, err := New("<!DOCTYPE html><html><body><p>no mount</p></body></html>", table, Options{})
	if !errors.Is(err, ErrMountMissing) {
		t.Errorf("err = %v, want ErrMountMissing", err)
	}
}

func TestHydrateMismatchRebuild(t *testing.T) {
	table, _ := testSite()
	doc := serveDocument(t, table, "/")

	// Simulate markup that went stale between render and hydration.
	stale := strings.Replace(doc, "<h1>Home</h1>", "<h1>Old Home</h1>", 1)

	b, err := New(stale, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Hydrate("/"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if n := b.Mismatches(); n == 0 {
		t.Error("Mismatches = 0, want rebuild of stale subtree")
	}
}

func TestHydrateBindsHandlers(t *testing.T) {
	table, clicks := testSite()
	doc := serveDocument(t, table, "/")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := b.Trigger("h1", "click"); err == nil {
		t.Error("Trigger before Hydrate did not error")
	}

	if err := b.Hydrate("/"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	hids := b.HIDs()
	if len(hids) != 1 || hids[0] != "h1" {
		t.Fatalf("HIDs = %v, want [h1]", hids)
	}

	if err := b.Trigger("h1", "click"); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}

	// Unbound event on a real element and an unknown id fail differently:
	// the first names the element, the second reports no element at all.
	if err := b.Trigger("h1", "input"); err == nil || !strings.Contains(err.Error(), "<button>") {
		t.Errorf("Trigger on unbound event: err = %v, want element named", err)
	}
	if err := b.Trigger("h99", "click"); err == nil || !strings.Contains(err.Error(), "no element") {
		t.Errorf("Trigger on unknown hid: err = %v, want no-element error", err)
	}
}

func TestHydrateFallbackRoute(t *testing.T) {
	table, _ := testSite()
	doc := serveDocument(t, table, "/missing/page")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Hydrate("/missing/page"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if n := b.Mismatches(); n != 0 {
		t.Errorf("Mismatches = %d, want 0 for symmetric fallback render", n)
	}
}

func TestHydrateNoRouteNoFallback(t *testing.T) {
	table := router.New(
		router.Page("/", "Home", func(ctx server.Ctx, params router.Params) *vdom.VNode {
			return vdom.Main(vdom.Text("home"))
		}),
	)
	doc := render.Shell{}.Assemble("<main>home</main>", "Home")

	b, err := New(doc, table, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Hydrate("/nope"); !errors.Is(err, ErrNoRoute) {
		t.Errorf("err = %v, want ErrNoRoute", err)
	}
}
