package strata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/strata-web/strata/pkg/render"
	"github.com/strata-web/strata/pkg/router"
	"github.com/strata-web/strata/pkg/server"
	"github.com/strata-web/strata/pkg/vdom"
)

// =============================================================================
// App Type
// =============================================================================

// App is the render server: a single http.Handler that serves static
// files, renders page routes to HTML, and dispatches JSON API routes.
//
// Create an App with strata.New():
//
//	app := strata.New(strata.Config{
//	    Static: strata.StaticConfig{Dir: "public"},
//	    Shell:  render.Shell{StyleSheets: []string{"/styles.css"}},
//	}, site.Routes())
//
//	http.ListenAndServe(":8080", app)
type App struct {
	table *router.Table
	shell render.Shell

	staticFS http.FileSystem

	middleware []server.Middleware

	config Config
	logger *slog.Logger
}

// New creates a render server for the given route table.
// The table is immutable; build it fully before calling New.
func New(cfg Config, table *router.Table) *App {
	if cfg.Static.Prefix == "" {
		cfg.Static.Prefix = "/"
	}
	if cfg.API.MaxBodyBytes == 0 {
		cfg.API.MaxBodyBytes = DefaultAPIConfig().MaxBodyBytes
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	shell := cfg.Shell
	if cfg.DevMode {
		shell.Stamp = true
	}

	app := &App{
		table:  table,
		shell:  shell,
		config: cfg,
		logger: logger,
	}

	if cfg.Static.Dir != "" {
		app.staticFS = http.Dir(cfg.Static.Dir)
	}

	return app
}

// Use adds global middleware that runs around every page render and API
// call, in registration order.
func (a *App) Use(mw ...server.Middleware) {
	a.middleware = append(a.middleware, mw...)
}

// Table returns the route table the app serves.
func (a *App) Table() *router.Table {
	return a.table
}

// Shell returns the document shell the app assembles pages with.
func (a *App) Shell() render.Shell {
	return a.shell
}

// Config returns the app configuration.
func (a *App) Config() Config {
	return a.config
}

// Handler returns the App as an http.Handler.
func (a *App) Handler() http.Handler {
	return a
}

// =============================================================================
// http.Handler Implementation
// =============================================================================

// ServeHTTP implements http.Handler.
// Request dispatch order: static files, then route match, then the
// not-found fallback. Every HTML response flows through the same shell.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if a.staticFS != nil && a.shouldServeStatic(path) {
		a.serveStatic(w, r)
		return
	}

	match, found := a.table.Match(r.Method, path)
	if !found {
		a.renderNotFound(w, r)
		return
	}

	if match.API != nil {
		a.handleAPI(w, r, match)
		return
	}

	// Page routes render for GET only.
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		a.renderNotFound(w, r)
		return
	}

	a.renderPage(w, r, match)
}

// =============================================================================
// Page Rendering
// =============================================================================

// renderPage runs the middleware chain, calls the matched view, and
// writes the assembled document. The render is synchronous: the response
// is not written until the full document string exists.
func (a *App) renderPage(w http.ResponseWriter, r *http.Request, match *router.Match) {
	ctx := server.NewCtx(r, match.Params, a.logger)

	var markup string
	ranFinal, err := server.RunMiddleware(ctx, a.middleware, func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("view panicked: %v", rec)
			}
		}()

		node := match.View(ctx, match.Params)
		if node == nil {
			return fmt.Errorf("view returned nil for %s", r.URL.Path)
		}

		// Pretty mode is never used here: the hydration bootstrap
		// requires byte-identical re-renders.
		markup, err = render.NewRenderer(render.RendererConfig{}).RenderToString(node)
		return err
	})

	if err != nil {
		a.logger.Error("page render failed", "path", r.URL.Path, "error", err)
		a.writeErrorDocument(w, ctx)
		return
	}

	if !ranFinal {
		// Middleware short-circuited without rendering a page.
		server.ApplyResponse(ctx, w)
		status := server.StatusOf(ctx)
		if status == 0 {
			status = http.StatusNoContent
		}
		w.WriteHeader(status)
		return
	}

	status := server.StatusOf(ctx)
	if status == 0 {
		status = http.StatusOK
	}
	a.writeDocument(w, ctx, markup, match.Title, status)
}

// renderNotFound renders the fallback view through the normal pipeline
// with a 404 status. Without a registered fallback a built-in minimal
// view is used, so unmatched paths still produce a well-formed document.
func (a *App) renderNotFound(w http.ResponseWriter, r *http.Request) {
	ctx := server.NewCtx(r, nil, a.logger)

	view := a.table.NotFound()
	if view == nil {
		view = defaultNotFoundView
	}

	node := view(ctx, router.Params{})
	if node == nil {
		node = defaultNotFoundView(ctx, router.Params{})
	}

	markup, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		a.logger.Error("not-found render failed", "path", r.URL.Path, "error", err)
		a.writeErrorDocument(w, ctx)
		return
	}

	a.writeDocument(w, ctx, markup, "Not Found", http.StatusNotFound)
}

// writeDocument assembles markup into the full document and writes it.
func (a *App) writeDocument(w http.ResponseWriter, ctx server.Ctx, markup, title string, status int) {
	doc := a.shell.Assemble(markup, title)

	server.ApplyResponse(ctx, w)
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	w.WriteHeader(status)
	w.Write([]byte(doc))
}

// writeErrorDocument writes a minimal 500 document, still assembled by
// the shell so the response shape matches every other page. Error
// details stay in the log, not the response.
func (a *App) writeErrorDocument(w http.ResponseWriter, ctx server.Ctx) {
	node := vdom.Main(
		vdom.H1(vdom.Text("Something went wrong")),
		vdom.P(vdom.Text("The server could not render this page.")),
	)

	markup, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		// The error view contains no user input; this cannot happen
		// unless the renderer itself is broken.
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.writeDocument(w, ctx, markup, "Error", http.StatusInternalServerError)
}

// defaultNotFoundView is used when the table has no NotFound route.
func defaultNotFoundView(ctx server.Ctx, params router.Params) *vdom.VNode {
	return vdom.Main(
		vdom.H1(vdom.Text("Page Not Found")),
		vdom.P(vdom.Text("The page you requested does not exist.")),
	)
}

// =============================================================================
// API Handling
// =============================================================================

// handleAPI dispatches a JSON API route. The VNode pipeline is never
// involved: the handler's return value is encoded directly.
func (a *App) handleAPI(w http.ResponseWriter, r *http.Request, match *router.Match) {
	ctx := server.NewCtx(r, match.Params, a.logger)

	var out any
	ranFinal, err := server.RunMiddleware(ctx, a.middleware, func() error {
		var body map[string]any
		if shouldReadAPIRequestBody(r) {
			raw, err := readAPIRequestBody(w, r, a.config.API.MaxBodyBytes)
			if err != nil {
				return err
			}
			body, err = decodeAPIBody(raw, r.Header.Get("Content-Type"), a.config.API.RequireJSONContentType)
			if err != nil {
				return err
			}
		}

		var err error
		out, err = match.API(ctx, body)
		return err
	})

	server.ApplyResponse(ctx, w)
	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		status := http.StatusInternalServerError
		if sc, ok := err.(interface{ StatusCode() int }); ok {
			status = sc.StatusCode()
		}
		if status >= 500 {
			a.logger.Error("API handler failed", "path", r.URL.Path, "error", err)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	if !ranFinal {
		// Middleware short-circuited without producing a response body.
		status := server.StatusOf(ctx)
		if status == 0 {
			status = http.StatusNoContent
		}
		w.WriteHeader(status)
		return
	}

	status := server.StatusOf(ctx)
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if status != http.StatusNoContent {
		json.NewEncoder(w).Encode(out)
	}
}
