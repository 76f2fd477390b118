package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCtxRequestInfo(t *testing.T) {
	req := httptest.NewRequest("GET", "/blog/intro?name=Ada&tag=go", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

	ctx := NewCtx(req, map[string]string{"slug": "intro"}, nil)

	if ctx.Path() != "/blog/intro" {
		t.Errorf("Path = %q", ctx.Path())
	}
	if ctx.Method() != "GET" {
		t.Errorf("Method = %q", ctx.Method())
	}
	if ctx.QueryParam("name") != "Ada" {
		t.Errorf("QueryParam(name) = %q", ctx.QueryParam("name"))
	}
	if ctx.QueryParam("missing") != "" {
		t.Errorf("QueryParam(missing) = %q", ctx.QueryParam("missing"))
	}
	if ctx.Param("slug") != "intro" {
		t.Errorf("Param(slug) = %q", ctx.Param("slug"))
	}
	if ctx.Header("Accept") != "text/html" {
		t.Errorf("Header(Accept) = %q", ctx.Header("Accept"))
	}
	cookie, err := ctx.Cookie("theme")
	if err != nil || cookie.Value != "dark" {
		t.Errorf("Cookie(theme) = %v, %v", cookie, err)
	}
}

func TestCtxNilParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	ctx := NewCtx(req, nil, nil)
	if ctx.Param("anything") != "" {
		t.Errorf("Param on nil params = %q", ctx.Param("anything"))
	}
}

func TestCtxStatus(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/hello", nil)
	ctx := NewCtx(req, nil, nil)

	if StatusOf(ctx) != 0 {
		t.Errorf("StatusOf before Status = %d", StatusOf(ctx))
	}
	ctx.Status(http.StatusCreated)
	if StatusOf(ctx) != http.StatusCreated {
		t.Errorf("StatusOf = %d, want 201", StatusOf(ctx))
	}
}

func TestCtxApplyResponse(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	ctx := NewCtx(req, nil, nil)
	ctx.SetHeader("X-Request-Id", "abc123")
	ctx.SetCookie(&http.Cookie{Name: "theme", Value: "light", Path: "/"})

	rec := httptest.NewRecorder()
	ApplyResponse(ctx, rec)

	if got := rec.Header().Get("X-Request-Id"); got != "abc123" {
		t.Errorf("X-Request-Id = %q", got)
	}
	if got := rec.Header().Get("Set-Cookie"); got == "" {
		t.Error("Set-Cookie header missing")
	}
}

func TestCtxValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	ctx := NewCtx(req, nil, nil)

	type key struct{}
	ctx.SetValue(key{}, 42)
	if got := ctx.Value(key{}); got != 42 {
		t.Errorf("Value = %v, want 42", got)
	}
	if got := ctx.Value("absent"); got != nil {
		t.Errorf("Value(absent) = %v, want nil", got)
	}
}

func TestCtxLoggerFallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	ctx := NewCtx(req, nil, nil)
	if ctx.Logger() == nil {
		t.Error("Logger returned nil")
	}
}
