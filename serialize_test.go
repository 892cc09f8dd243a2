package sllog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerializeScalars(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "x = nil"},
		{name: "bool", value: true, want: "x = true"},
		{name: "int", value: -42, want: "x = -42"},
		{name: "uint", value: uint16(7), want: "x = 7"},
		{name: "float", value: 1.5, want: "x = 1.5"},
		{name: "string", value: "hi", want: `x = "hi"`},
		{name: "string escaping", value: "a\"b\nc", want: `x = "a\"b\nc"`},
		{name: "nil pointer", value: (*int)(nil), want: "x = nil"},
		{name: "nil map", value: map[string]int(nil), want: "x = nil"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Serialize("x", tc.value, "  ")
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("got %q want [%q]", got, tc.want)
			}
		})
	}
}

func TestSerializeMapDeterministicOrder(t *testing.T) {
	value := map[string]any{"b": 2, "a": 1, "c": "three"}
	want := []string{
		`x = <1>{`,
		`  a = 1,`,
		`  b = 2,`,
		`  c = "three",`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("serialized output mismatch (-want +got):\n%s", diff)
	}

	// Identical declared content serializes byte-identically.
	again := Serialize("x", map[string]any{"c": "three", "a": 1, "b": 2}, "  ")
	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("identical content diverged (-first +second):\n%s", diff)
	}
}

func TestSerializeSequencePartFirst(t *testing.T) {
	value := map[any]any{
		"name": "demo",
		1:      "first",
		2:      "second",
		5:      "gap",
	}
	want := []string{
		`x = <1>{`,
		`  "first",`,
		`  "second",`,
		`  5 = "gap",`,
		`  name = "demo",`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence partition mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeIntegerKeyWidthCollision(t *testing.T) {
	// int8(1) and int64(1) are distinct map keys occupying the same
	// position; both entries must survive, keyed, narrower kind first.
	value := map[any]any{int8(1): "a", int64(1): "b"}
	want := []string{
		`x = <1>{`,
		`  1 = "a",`,
		`  1 = "b",`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("colliding integer keys (-want +got):\n%s", diff)
	}
}

func TestSerializeQuotesControlCharacterKeys(t *testing.T) {
	value := map[string]int{"a\nb": 1, "plain": 2}
	want := []string{
		`x = <1>{`,
		`  "a\nb" = 1,`,
		`  plain = 2,`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("control-character key (-want +got):\n%s", diff)
	}
}

func TestSerializeSlice(t *testing.T) {
	want := []string{
		`x = <1>{`,
		`  1,`,
		`  2,`,
		`  3,`,
		`}`,
	}
	got := Serialize("x", []int{1, 2, 3}, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slice output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeNestedIndentation(t *testing.T) {
	value := map[string]any{
		"inner": map[string]int{"z": 1},
		"flag":  true,
	}
	want := []string{
		`x = <1>{`,
		`..flag = true,`,
		`..inner = <2>{`,
		`....z = 1,`,
		`..},`,
		`}`,
	}
	got := Serialize("x", value, "..")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nested output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeStructFieldsSorted(t *testing.T) {
	type record struct {
		Zeta   int
		Alpha  string
		hidden bool
	}
	_ = record{hidden: true}
	want := []string{
		`x = <1>{`,
		`  Alpha = "a",`,
		`  Zeta = 9,`,
		`}`,
	}
	got := Serialize("x", record{Zeta: 9, Alpha: "a"}, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("struct output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeCycleRendersBackReference(t *testing.T) {
	value := map[string]any{}
	value["self"] = value
	want := []string{
		`x = <1>{`,
		`  self = <table 1>,`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cycle output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializePointerCycle(t *testing.T) {
	type node struct {
		Label string
		Next  *node
	}
	n := &node{Label: "loop"}
	n.Next = n
	want := []string{
		`x = <1>{`,
		`  Label = "loop",`,
		`  Next = <table 1>,`,
		`}`,
	}
	got := Serialize("x", n, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pointer cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeSharedReference(t *testing.T) {
	shared := map[string]int{"n": 1}
	value := map[string]any{"first": shared, "second": shared}
	want := []string{
		`x = <1>{`,
		`  first = <2>{`,
		`    n = 1,`,
		`  },`,
		`  second = <table 2>,`,
		`}`,
	}
	got := Serialize("x", value, "  ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shared reference mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeOpaqueKinds(t *testing.T) {
	fn := strings.ToUpper
	other := strings.ToLower
	ch := make(chan int)
	got := Serialize("x", []any{fn, fn, other, ch}, "  ")
	want := []string{
		`x = <1>{`,
		`  <function 1>,`,
		`  <function 1>,`,
		`  <function 2>,`,
		`  <channel 1>,`,
		`}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("opaque kinds mismatch (-want +got):\n%s", diff)
	}
}

type describedConfig map[string]int

func (describedConfig) LogDescriptor() any { return "settings/v1" }

func TestSerializeDescriptorEntry(t *testing.T) {
	got := Serialize("x", describedConfig{"retries": 3}, "  ")
	want := []string{
		`x = <1>{`,
		`  retries = 3,`,
		`  <descriptor> = "settings/v1",`,
		`}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("descriptor entry mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeTerminatesOnDeepStructure(t *testing.T) {
	// Build a chain of nested maps; distinct composites bound the ordinals.
	root := map[string]any{}
	current := root
	for i := 0; i < 50; i++ {
		next := map[string]any{}
		current["next"] = next
		current = next
	}
	lines := Serialize("x", root, " ")
	if len(lines) == 0 {
		t.Fatalf("expected output")
	}
	last := lines[len(lines)-1]
	if strings.TrimSpace(last) != "}" {
		t.Fatalf("expected closing brace, got %q", last)
	}
}
