// This file re-exports vdom element constructors for the el package.
package el

import "github.com/strata-web/strata/pkg/vdom"

// Document structure

func Html(args ...any) *VNode  { return vdom.Html(args...) }
func Head(args ...any) *VNode  { return vdom.Head(args...) }
func Body(args ...any) *VNode  { return vdom.Body(args...) }
func Title(args ...any) *VNode { return vdom.Title(args...) }
func Meta(args ...any) *VNode  { return vdom.Meta(args...) }
func Link(args ...any) *VNode  { return vdom.Link(args...) }

// Sectioning

func Header(args ...any) *VNode  { return vdom.Header(args...) }
func Footer(args ...any) *VNode  { return vdom.Footer(args...) }
func Main(args ...any) *VNode    { return vdom.Main(args...) }
func Nav(args ...any) *VNode     { return vdom.Nav(args...) }
func Section(args ...any) *VNode { return vdom.Section(args...) }
func Article(args ...any) *VNode { return vdom.Article(args...) }
func Aside(args ...any) *VNode   { return vdom.Aside(args...) }

// Headings and text

func H1(args ...any) *VNode         { return vdom.H1(args...) }
func H2(args ...any) *VNode         { return vdom.H2(args...) }
func H3(args ...any) *VNode         { return vdom.H3(args...) }
func H4(args ...any) *VNode         { return vdom.H4(args...) }
func Div(args ...any) *VNode        { return vdom.Div(args...) }
func P(args ...any) *VNode          { return vdom.P(args...) }
func Span(args ...any) *VNode       { return vdom.Span(args...) }
func Pre(args ...any) *VNode        { return vdom.Pre(args...) }
func Blockquote(args ...any) *VNode { return vdom.Blockquote(args...) }
func Ul(args ...any) *VNode         { return vdom.Ul(args...) }
func Ol(args ...any) *VNode         { return vdom.Ol(args...) }
func Li(args ...any) *VNode         { return vdom.Li(args...) }
func Hr(args ...any) *VNode         { return vdom.Hr(args...) }

// Inline

func A(args ...any) *VNode      { return vdom.A(args...) }
func Strong(args ...any) *VNode { return vdom.Strong(args...) }
func Em(args ...any) *VNode     { return vdom.Em(args...) }
func Small(args ...any) *VNode  { return vdom.Small(args...) }
func Code(args ...any) *VNode   { return vdom.Code(args...) }
func Time_(args ...any) *VNode  { return vdom.Time_(args...) }
func Br(args ...any) *VNode     { return vdom.Br(args...) }

// Forms

func Form(args ...any) *VNode     { return vdom.Form(args...) }
func Input(args ...any) *VNode    { return vdom.Input(args...) }
func Textarea(args ...any) *VNode { return vdom.Textarea(args...) }
func Select(args ...any) *VNode   { return vdom.Select(args...) }
func Option(args ...any) *VNode   { return vdom.Option(args...) }
func Button(args ...any) *VNode   { return vdom.Button(args...) }
func Label(args ...any) *VNode    { return vdom.Label(args...) }

// Tables

func Table(args ...any) *VNode { return vdom.Table(args...) }
func Thead(args ...any) *VNode { return vdom.Thead(args...) }
func Tbody(args ...any) *VNode { return vdom.Tbody(args...) }
func Tr(args ...any) *VNode    { return vdom.Tr(args...) }
func Th(args ...any) *VNode    { return vdom.Th(args...) }
func Td(args ...any) *VNode    { return vdom.Td(args...) }

// Media and scripting

func Img(args ...any) *VNode      { return vdom.Img(args...) }
func Script(args ...any) *VNode   { return vdom.Script(args...) }
func Noscript(args ...any) *VNode { return vdom.Noscript(args...) }
func Style(args ...any) *VNode    { return vdom.Style(args...) }

func CustomElement(tag string, args ...any) *VNode { return vdom.CustomElement(tag, args...) }
