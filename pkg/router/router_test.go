package router

import (
	"testing"

	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

func pageView(name string) View {
	return func(ctx server.Ctx, params Params) *vdom.VNode {
		return vdom.Div(vdom.Text(name))
	}
}

func apiHandler(name string) APIHandler {
	return func(ctx server.Ctx, body map[string]any) (any, error) {
		return map[string]string{"handler": name}, nil
	}
}

func testTable() *Table {
	return New(
		Page("/", "Home", pageView("home")),
		Page("/about", "About", pageView("about")),
		Page("/blog/:slug", "Blog", pageView("blog")),
		Page("/docs/*rest", "Docs", pageView("docs")),
		API("GET", "/api/hello", apiHandler("hello-get")),
		API("POST", "/api/hello", apiHandler("hello-post")),
		NotFound(pageView("notfound")),
	)
}

func TestMatchStatic(t *testing.T) {
	table := testTable()

	tests := []struct {
		path  string
		title string
	}{
		{"/", "Home"},
		{"/about", "About"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := table.Match("GET", tt.path)
			if !ok {
				t.Fatalf("no match for %s", tt.path)
			}
			if m.View == nil {
				t.Fatal("match has no view")
			}
			if m.Title != tt.title {
				t.Errorf("Title = %q, want %q", m.Title, tt.title)
			}
			if len(m.Params) != 0 {
				t.Errorf("Params = %v, want empty", m.Params)
			}
		})
	}
}

func TestMatchParams(t *testing.T) {
	table := testTable()

	m, ok := table.Match("GET", "/blog/intro-to-ssr")
	if !ok {
		t.Fatal("no match for /blog/intro-to-ssr")
	}
	if got := m.Params["slug"]; got != "intro-to-ssr" {
		t.Errorf("slug = %q, want %q", got, "intro-to-ssr")
	}
}

func TestMatchCatchAll(t *testing.T) {
	table := testTable()

	m, ok := table.Match("GET", "/docs/guide/setup/install")
	if !ok {
		t.Fatal("no match for /docs/guide/setup/install")
	}
	if got := m.Params["rest"]; got != "guide/setup/install" {
		t.Errorf("rest = %q, want %q", got, "guide/setup/install")
	}
}

func TestMatchStaticWinsOverParam(t *testing.T) {
	table := New(
		Page("/blog/featured", "Featured", pageView("featured")),
		Page("/blog/:slug", "Blog", pageView("blog")),
	)

	m, ok := table.Match("GET", "/blog/featured")
	if !ok {
		t.Fatal("no match")
	}
	if m.Title != "Featured" {
		t.Errorf("Title = %q, static segment should win", m.Title)
	}
	if len(m.Params) != 0 {
		t.Errorf("Params = %v, want empty", m.Params)
	}
}

func TestMatchBacktracksFromStatic(t *testing.T) {
	// /blog/featured has no deeper routes, so /blog/featured/comments
	// must fall back to the parameter child.
	table := New(
		Page("/blog/featured", "Featured", pageView("featured")),
		Page("/blog/:slug/comments", "Comments", pageView("comments")),
	)

	m, ok := table.Match("GET", "/blog/featured/comments")
	if !ok {
		t.Fatal("no match")
	}
	if m.Title != "Comments" {
		t.Errorf("Title = %q, want Comments", m.Title)
	}
	if got := m.Params["slug"]; got != "featured" {
		t.Errorf("slug = %q, want featured", got)
	}
}

func TestMatchAPIMethods(t *testing.T) {
	table := testTable()

	m, ok := table.Match("POST", "/api/hello")
	if !ok {
		t.Fatal("no match for POST /api/hello")
	}
	if m.API == nil {
		t.Fatal("match has no API handler")
	}

	if _, ok := table.Match("DELETE", "/api/hello"); ok {
		t.Error("unregistered method matched")
	}
}

func TestMatchNoRoute(t *testing.T) {
	table := testTable()

	if _, ok := table.Match("GET", "/nope"); ok {
		t.Error("unexpected match for /nope")
	}
	if table.NotFound() == nil {
		t.Error("NotFound view missing")
	}
}

func TestMatchTrailingSlash(t *testing.T) {
	table := testTable()

	if _, ok := table.Match("GET", "/about/"); !ok {
		t.Error("trailing slash did not match")
	}
}

func TestNewDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate page route did not panic")
		}
	}()
	New(
		Page("/x", "X", pageView("a")),
		Page("/x", "X", pageView("b")),
	)
}

func TestRoutesListing(t *testing.T) {
	table := testTable()

	routes := table.Routes()
	if len(routes) != 6 {
		t.Fatalf("Routes() returned %d entries, want 6", len(routes))
	}
	for i := 1; i < len(routes); i++ {
		if routes[i-1].Pattern > routes[i].Pattern {
			t.Errorf("routes not sorted: %q before %q", routes[i-1].Pattern, routes[i].Pattern)
		}
	}
}
