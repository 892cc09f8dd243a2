package sllog

import (
	"strings"
	"testing"

	"github.com/smi11/sllog/ansi"
)

func newParseLogger() *Logger {
	return &Logger{
		templates: make(map[string]*template),
		clock:     newClock(nil),
	}
}

func TestParseTemplateSegments(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []segment
	}{
		{
			name: "literal only",
			text: "plain text",
			want: []segment{{literal: "plain text"}},
		},
		{
			name: "tags and literals",
			text: "%F %T ",
			want: []segment{
				{tag: 'F'},
				{literal: " "},
				{tag: 'T'},
				{literal: " "},
			},
		},
		{
			name: "modifier capture",
			text: "%.3e|%-5L",
			want: []segment{
				{tag: 'e', mod: ".3"},
				{literal: "|"},
				{tag: 'L', mod: "-5"},
			},
		},
		{
			name: "bare percent stays literal",
			text: "100% sure%n",
			want: []segment{
				{literal: "100% sure"},
				{tag: 'n'},
			},
		},
		{
			name: "trailing percent",
			text: "done%",
			want: []segment{{literal: "done%"}},
		},
		{
			name: "unrecognized tag letter dropped",
			text: "a%zb",
			want: []segment{{literal: "ab"}},
		},
		{
			name: "unrecognized tag with modifiers dropped",
			text: "x%-10.2qy",
			want: []segment{{literal: "xy"}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseTemplate(tc.text, tc.text)
			if len(got.segs) != len(tc.want) {
				t.Fatalf("segment count: got %d want %d (%#v)", len(got.segs), len(tc.want), got.segs)
			}
			for i := range tc.want {
				if got.segs[i] != tc.want[i] {
					t.Fatalf("segment %d: got %+v want %+v", i, got.segs[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseTemplateNeedsCaller(t *testing.T) {
	if parseTemplate("%F %T", "%F %T").needsCaller {
		t.Fatalf("template without caller tags should not need caller")
	}
	if !parseTemplate("%S", "%S").needsCaller {
		t.Fatalf("%%S template should need caller")
	}
	if !parseTemplate("x%fy", "x%fy").needsCaller {
		t.Fatalf("%%f template should need caller")
	}
}

func TestCompileMemoizes(t *testing.T) {
	l := newParseLogger()
	first := l.compile("%F %T %L")
	second := l.compile("%F %T %L")
	if first != second {
		t.Fatalf("expected identical renderer for identical template text")
	}
	if third := l.compile("%F"); third == first {
		t.Fatalf("distinct templates must not share a renderer")
	}
}

func TestCompileAppliesColorizeOnce(t *testing.T) {
	l := newParseLogger()
	l.colorize = ansi.Colorize

	compiled := l.compile("%{red}%l%{}")
	got := compiled.render(l, 2, nil)
	want := ansi.Red + "2" + ansi.Reset
	if got != want {
		t.Fatalf("colorized render: got %q want %q", got, want)
	}
	// The memo key is the raw text, not the transformed text.
	if _, ok := l.templates["%{red}%l%{}"]; !ok {
		t.Fatalf("memo should be keyed by raw template text")
	}
}

func TestRenderConcatenatesSegments(t *testing.T) {
	l := newParseLogger()
	l.levels = []level{{name: "info"}}
	got := l.compile("[%L:%l] ").render(l, 1, nil)
	if got != "[info:1] " {
		t.Fatalf("render: got %q want %q", got, "[info:1] ")
	}
}

func TestRenderIdempotent(t *testing.T) {
	l := newParseLogger()
	l.levels = []level{{name: "err"}}
	tmpl := l.compile("%-5L|")
	a := tmpl.render(l, 1, nil)
	b := tmpl.render(l, 1, nil)
	if a != b {
		t.Fatalf("repeated render diverged: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "err  ") {
		t.Fatalf("width modifier not applied: %q", a)
	}
}
