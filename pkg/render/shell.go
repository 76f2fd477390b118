package render

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultTitle is substituted when a page supplies no title.
const DefaultTitle = "Strata App"

// DefaultDescription is substituted when the shell supplies no meta
// description, keeping the head tag set fixed across pages.
const DefaultDescription = "A server-rendered Strata application"

// DefaultMountID is the id of the mount-point element. The hydration
// bootstrap looks this element up by id, so it must be stable across
// server and client.
const DefaultMountID = "app"

// Shell assembles the HTML document around server-rendered markup.
//
// Assembly is pure string construction: no I/O, no branching beyond
// default-value substitution. Insertion order is fixed so the browser
// paints styled content before any script executes: stylesheets in the
// head, markup in the mount element, scripts after the mount element.
type Shell struct {
	// Lang is the html element's lang attribute. Defaults to "en".
	Lang string

	// Description is the meta description content. Defaults to
	// DefaultDescription.
	Description string

	// MountID is the id of the mount-point element. Defaults to
	// DefaultMountID.
	MountID string

	// StyleSheets are hrefs emitted as <link rel="stylesheet"> in order.
	StyleSheets []string

	// Scripts are srcs emitted as deferred <script> tags after the
	// mount element, in order.
	Scripts []string

	// ExtraBody is raw HTML appended after the scripts. Used for the
	// dev-mode reload client; never placed inside the mount element.
	ExtraBody string

	// Stamp emits a render-timestamp comment for debugging. The comment
	// sits outside the mount element so it cannot cause a hydration
	// mismatch.
	Stamp bool

	// Now supplies the stamp clock. Defaults to time.Now.
	Now func() time.Time
}

// Assemble wraps the given markup in the full HTML document.
// An empty title falls back to DefaultTitle; empty markup produces an
// empty mount element. The markup is inserted verbatim.
func (s Shell) Assemble(markup, title string) string {
	var b strings.Builder
	// The writer is a strings.Builder; none of the writes can fail.
	_ = s.AssembleTo(&b, markup, title)
	return b.String()
}

// AssembleTo writes the assembled document to w.
func (s Shell) AssembleTo(w io.Writer, markup, title string) error {
	lang := s.Lang
	if lang == "" {
		lang = "en"
	}
	if title == "" {
		title = DefaultTitle
	}
	mountID := s.MountID
	if mountID == "" {
		mountID = DefaultMountID
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := s.writeHead(w, title); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}

	// Mount point. The markup goes in verbatim; everything else in the
	// document stays outside this element.
	if _, err := fmt.Fprintf(w, `<div id="%s">%s</div>`+"\n", escapeAttr(mountID), markup); err != nil {
		return err
	}

	if s.Stamp {
		now := s.Now
		if now == nil {
			now = time.Now
		}
		if _, err := fmt.Fprintf(w, "<!-- rendered %s -->\n", now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}

	for _, src := range s.Scripts {
		if _, err := fmt.Fprintf(w, `<script src="%s" defer></script>`+"\n", escapeAttr(src)); err != nil {
			return err
		}
	}

	if s.ExtraBody != "" {
		if _, err := io.WriteString(w, s.ExtraBody+"\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// writeHead writes the document head section.
func (s Shell) writeHead(w io.Writer, title string) error {
	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(title)); err != nil {
		return err
	}
	desc := s.Description
	if desc == "" {
		desc = DefaultDescription
	}
	if _, err := fmt.Fprintf(w, `  <meta name="description" content="%s">`+"\n", escapeAttr(desc)); err != nil {
		return err
	}
	for _, href := range s.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n")
	return err
}
