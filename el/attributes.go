// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/strata-web/strata/pkg/vdom"

func ID(id string) Attr                 { return vdom.ID(id) }
func Class(classes ...string) Attr      { return vdom.Class(classes...) }
func StyleAttr(style string) Attr       { return vdom.StyleAttr(style) }
func Data(key, value string) Attr       { return vdom.Data(key, value) }
func Href(href string) Attr             { return vdom.Href(href) }
func Src(src string) Attr               { return vdom.Src(src) }
func Rel(rel string) Attr               { return vdom.Rel(rel) }
func Target(target string) Attr         { return vdom.Target(target) }
func Lang(lang string) Attr             { return vdom.Lang(lang) }
func Charset(charset string) Attr       { return vdom.Charset(charset) }
func Name(name string) Attr             { return vdom.Name(name) }
func Content(content string) Attr       { return vdom.Content(content) }
func Type_(t string) Attr               { return vdom.Type_(t) }
func Value(value string) Attr           { return vdom.Value(value) }
func Placeholder(text string) Attr      { return vdom.Placeholder(text) }
func For(id string) Attr                { return vdom.For(id) }
func Disabled(disabled bool) Attr       { return vdom.Disabled(disabled) }
func Required(required bool) Attr       { return vdom.Required(required) }
func Checked(checked bool) Attr         { return vdom.Checked(checked) }
func Alt(alt string) Attr               { return vdom.Alt(alt) }
func Width(w int) Attr                  { return vdom.Width(w) }
func Height(h int) Attr                 { return vdom.Height(h) }
func Role(role string) Attr             { return vdom.Role(role) }
func AriaLabel(label string) Attr       { return vdom.AriaLabel(label) }
func AriaHidden(hidden bool) Attr       { return vdom.AriaHidden(hidden) }
func TitleAttr(title string) Attr       { return vdom.TitleAttr(title) }
func Defer() Attr                       { return vdom.Defer() }
