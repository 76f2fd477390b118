package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "hello world", want: "hello world"},
		{name: "markup characters", in: `<b>&</b>`, want: "&lt;b&gt;&amp;&lt;/b&gt;"},
		{name: "quotes", in: `"quoted" and 'single'`, want: "&quot;quoted&quot; and &#39;single&#39;"},
		{name: "whitespace preserved", in: "a\nb\tc", want: "a\nb\tc"},
		{name: "unicode preserved", in: "café ✓", want: "café ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.in); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "markup characters", in: `<img src="x">`, want: "&lt;img src=&quot;x&quot;&gt;"},
		{name: "newline", in: "line1\nline2", want: "line1&#10;line2"},
		{name: "carriage return and tab", in: "a\rb\tc", want: "a&#13;b&#9;c"},
		{name: "ampersand first", in: "&amp;", want: "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.in); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
