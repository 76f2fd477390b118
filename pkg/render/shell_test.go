package render

import (
	"strings"
	"testing"
	"time"
)

func TestAssembleTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "explicit title", title: "My Post", want: "<title>My Post</title>"},
		{name: "empty title uses default", title: "", want: "<title>" + DefaultTitle + "</title>"},
		{name: "title is escaped", title: `<script>`, want: "<title>&lt;script&gt;</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Shell{}.Assemble("<p>x</p>", tt.title)
			if !strings.Contains(doc, tt.want) {
				t.Errorf("document missing %q:\n%s", tt.want, doc)
			}
		})
	}
}

func TestAssembleMountContent(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "markup inserted verbatim",
			markup: "<p>Hello &amp; welcome</p>",
			want:   `<div id="app"><p>Hello &amp; welcome</p></div>`,
		},
		{
			name:   "empty markup yields empty mount",
			markup: "",
			want:   `<div id="app"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Shell{}.Assemble(tt.markup, "T")
			if !strings.Contains(doc, tt.want) {
				t.Errorf("document missing %q:\n%s", tt.want, doc)
			}
		})
	}
}

func TestAssembleDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{
			name: "explicit description",
			desc: "a test page",
			want: `<meta name="description" content="a test page">`,
		},
		{
			name: "empty description uses default",
			desc: "",
			want: `<meta name="description" content="` + DefaultDescription + `">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Shell{Description: tt.desc}.Assemble("<p>x</p>", "T")
			if !strings.Contains(doc, tt.want) {
				t.Errorf("document missing %q:\n%s", tt.want, doc)
			}
		})
	}
}

func TestAssembleDocumentStructure(t *testing.T) {
	shell := Shell{
		Description: "test page",
		StyleSheets: []string{"/styles.css"},
		Scripts:     []string{"/bundle.js"},
	}
	doc := shell.Assemble("<p>x</p>", "T")

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Errorf("document does not start with doctype:\n%s", doc)
	}
	if !strings.Contains(doc, `<html lang="en">`) {
		t.Errorf("document missing default lang:\n%s", doc)
	}
	if !strings.Contains(doc, `<meta name="description" content="test page">`) {
		t.Errorf("document missing description:\n%s", doc)
	}

	// Stylesheets load in the head, before the mount element, so content
	// paints styled. Scripts come after the mount element.
	link := strings.Index(doc, `<link rel="stylesheet" href="/styles.css">`)
	mount := strings.Index(doc, `<div id="app">`)
	script := strings.Index(doc, `<script src="/bundle.js" defer></script>`)
	if link == -1 || mount == -1 || script == -1 {
		t.Fatalf("document missing link/mount/script:\n%s", doc)
	}
	if !(link < mount && mount < script) {
		t.Errorf("ordering wrong: link=%d mount=%d script=%d", link, mount, script)
	}
}

func TestAssembleCustomMountID(t *testing.T) {
	doc := Shell{MountID: "root"}.Assemble("<p>x</p>", "T")
	if !strings.Contains(doc, `<div id="root"><p>x</p></div>`) {
		t.Errorf("custom mount id not used:\n%s", doc)
	}
}

func TestAssembleStamp(t *testing.T) {
	fixed := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	shell := Shell{Stamp: true, Now: func() time.Time { return fixed }}
	doc := shell.Assemble("<p>x</p>", "T")

	comment := "<!-- rendered 2026-08-24T12:00:00Z -->"
	if !strings.Contains(doc, comment) {
		t.Fatalf("document missing stamp comment:\n%s", doc)
	}

	// The comment must sit outside the mount element or it would show up
	// as a hydration mismatch.
	mountEnd := strings.Index(doc, `<div id="app"><p>x</p></div>`)
	if mountEnd == -1 {
		t.Fatalf("mount element altered by stamp:\n%s", doc)
	}
	if strings.Index(doc, comment) < mountEnd {
		t.Errorf("stamp comment precedes mount element:\n%s", doc)
	}
}

func TestAssembleNoStampByDefault(t *testing.T) {
	doc := Shell{}.Assemble("<p>x</p>", "T")
	if strings.Contains(doc, "<!-- rendered") {
		t.Errorf("unexpected stamp comment:\n%s", doc)
	}
}

func TestAssembleExtraBody(t *testing.T) {
	doc := Shell{ExtraBody: `<script>reload()</script>`}.Assemble("<p>x</p>", "T")
	extra := strings.Index(doc, `<script>reload()</script>`)
	mount := strings.Index(doc, `<div id="app">`)
	if extra == -1 {
		t.Fatalf("extra body not emitted:\n%s", doc)
	}
	if extra < mount {
		t.Errorf("extra body inside or before mount element:\n%s", doc)
	}
}
