package sllog

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Descriptor lets a value attach auxiliary metadata to its serialized form.
// Dump renders the returned descriptor as a synthetic <descriptor> entry
// appended after the value's own entries, subject to the same cycle rules.
type Descriptor interface {
	LogDescriptor() any
}

// Serialize renders value as an ordered sequence of text lines. Composite
// values (maps, slices, arrays, structs, pointers to them) open as
// "<ordinal>{", list one entry per line indented by pad per depth, and close
// with "}" at matching indentation. Entries occupying consecutive integer
// positions starting at 1 form the sequence part and render first without
// keys; remaining entries render as "key = value," sorted by the key's
// textual form, so identical content always serializes identically.
//
// A composite reached a second time renders as a "<table N>" back-reference
// instead of being expanded again, which bounds recursion and makes cyclic
// structures safe. Opaque values are never expanded: funcs render as
// "<function N>", channels as "<channel N>" and unsafe pointers as
// "<pointer N>", each kind numbering its own ordinal space in first-visit
// order.
func Serialize(name string, value any, pad string) []string {
	s := &serializer{
		pad:    pad,
		tables: make(map[identity]int),
		opaque: make(map[string]map[identity]int),
	}
	s.buf = append(s.buf, name...)
	s.buf = append(s.buf, " = "...)
	s.value(reflect.ValueOf(value), 1)
	return strings.Split(string(s.buf), "\n")
}

// Dump serializes value and emits every line as a separate gated message at
// the given level, so each physical line carries the level's prefix and
// suffix framing. Like Log, it never fails.
func (l *Logger) Dump(level any, name string, value any) {
	idx, err := l.Resolve(level)
	if err != nil || !l.shouldEmit(idx) {
		return
	}
	for _, line := range Serialize(name, value, l.pad) {
		l.output(idx, line)
	}
}

// identity keys a reference-carrying value for cycle detection. The map does
// not outlive the Serialize call, so it cannot extend value lifetimes.
type identity struct {
	kind reflect.Kind
	ptr  uintptr
	len  int // distinguishes slices sharing a backing array
}

type serializer struct {
	pad       string
	buf       []byte
	tables    map[identity]int
	nextTable int
	opaque    map[string]map[identity]int
}

func (s *serializer) writeString(str string) {
	s.buf = append(s.buf, str...)
}

func (s *serializer) indent(depth int) {
	for i := 0; i < depth; i++ {
		s.buf = append(s.buf, s.pad...)
	}
}

// value appends the rendering of v at the given depth. Depth is the
// indentation level of v's children; the top-level call passes 1.
func (s *serializer) value(v reflect.Value, depth int) {
	if !v.IsValid() {
		s.writeString("nil")
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			s.writeString("nil")
			return
		}
		s.value(v.Elem(), depth)
	case reflect.Bool:
		s.writeString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s.buf = strconv.AppendInt(s.buf, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s.buf = strconv.AppendUint(s.buf, v.Uint(), 10)
	case reflect.Float32:
		s.buf = strconv.AppendFloat(s.buf, v.Float(), 'g', -1, 32)
	case reflect.Float64:
		s.buf = strconv.AppendFloat(s.buf, v.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		s.writeString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		s.buf = strconv.AppendQuote(s.buf, v.String())
	case reflect.Func:
		s.opaqueRef("function", v)
	case reflect.Chan:
		s.opaqueRef("channel", v)
	case reflect.UnsafePointer, reflect.Uintptr:
		s.opaqueRef("pointer", v)
	case reflect.Ptr:
		if v.IsNil() {
			s.writeString("nil")
			return
		}
		elem := v.Elem()
		if isComposite(elem.Kind()) {
			id := identity{kind: reflect.Ptr, ptr: v.Pointer()}
			s.composite(v, elem, depth, &id)
			return
		}
		s.value(elem, depth)
	case reflect.Map:
		if v.IsNil() {
			s.writeString("nil")
			return
		}
		id := identity{kind: reflect.Map, ptr: v.Pointer()}
		s.composite(v, v, depth, &id)
	case reflect.Slice:
		if v.IsNil() {
			s.writeString("nil")
			return
		}
		id := identity{kind: reflect.Slice, ptr: v.Pointer(), len: v.Len()}
		s.composite(v, v, depth, &id)
	case reflect.Array, reflect.Struct:
		// Value composites carry no identity and cannot close a cycle.
		s.composite(v, v, depth, nil)
	default:
		s.writeString(fmt.Sprint(v.Interface()))
	}
}

func isComposite(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// opaqueRef renders "<kind N>" with per-kind first-visit ordinals. Nil funcs
// and channels render as nil.
func (s *serializer) opaqueRef(kind string, v reflect.Value) {
	if (v.Kind() == reflect.Func || v.Kind() == reflect.Chan || v.Kind() == reflect.UnsafePointer) && v.IsNil() {
		s.writeString("nil")
		return
	}
	var ptr uintptr
	if v.Kind() == reflect.Uintptr {
		ptr = uintptr(v.Uint())
	} else {
		ptr = v.Pointer()
	}
	space := s.opaque[kind]
	if space == nil {
		space = make(map[identity]int)
		s.opaque[kind] = space
	}
	id := identity{kind: v.Kind(), ptr: ptr}
	ordinal, ok := space[id]
	if !ok {
		ordinal = len(space) + 1
		space[id] = ordinal
	}
	s.writeString("<" + kind + " " + strconv.Itoa(ordinal) + ">")
}

// composite renders holder's entries. The orig value carries the identity
// and the Descriptor hook (it may be a pointer to the value being walked).
func (s *serializer) composite(orig, v reflect.Value, depth int, id *identity) {
	if id != nil {
		if ordinal, ok := s.tables[*id]; ok {
			s.writeString("<table " + strconv.Itoa(ordinal) + ">")
			return
		}
	}
	s.nextTable++
	ordinal := s.nextTable
	if id != nil {
		s.tables[*id] = ordinal
	}
	s.writeString("<" + strconv.Itoa(ordinal) + ">{\n")

	seq, keyed := s.partition(v)
	for _, entry := range seq {
		s.indent(depth)
		s.value(entry, depth+1)
		s.writeString(",\n")
	}
	for _, entry := range keyed {
		s.indent(depth)
		s.writeString(entry.key)
		s.writeString(" = ")
		s.value(entry.value, depth+1)
		s.writeString(",\n")
	}
	if d, ok := descriptorOf(orig); ok {
		s.indent(depth)
		s.writeString("<descriptor> = ")
		s.value(reflect.ValueOf(d), depth+1)
		s.writeString(",\n")
	}
	s.indent(depth - 1)
	s.writeString("}")
}

type keyedEntry struct {
	key   string
	rank  int // breaks key-text ties between distinct key kinds
	value reflect.Value
}

func sortKeyed(keyed []keyedEntry) {
	sort.Slice(keyed, func(i, j int) bool {
		if keyed[i].key != keyed[j].key {
			return keyed[i].key < keyed[j].key
		}
		return keyed[i].rank < keyed[j].rank
	})
}

// partition splits a composite into its sequence part (consecutive integer
// positions from 1) and the remaining entries sorted by key text.
func (s *serializer) partition(v reflect.Value) ([]reflect.Value, []keyedEntry) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]reflect.Value, v.Len())
		for i := 0; i < v.Len(); i++ {
			seq[i] = v.Index(i)
		}
		return seq, nil
	case reflect.Struct:
		t := v.Type()
		keyed := make([]keyedEntry, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			keyed = append(keyed, keyedEntry{key: t.Field(i).Name, value: v.Field(i)})
		}
		sortKeyed(keyed)
		return nil, keyed
	case reflect.Map:
		type intEntry struct {
			key   reflect.Value
			value reflect.Value
		}
		var ints []intEntry
		var keyed []keyedEntry
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key()
			if k.Kind() == reflect.Interface && !k.IsNil() {
				k = k.Elem()
			}
			if isIntKind(k.Kind()) && k.Int() >= 1 {
				ints = append(ints, intEntry{key: k, value: iter.Value()})
				continue
			}
			keyed = append(keyed, keyedEntry{key: keyText(k), rank: int(k.Kind()), value: iter.Value()})
		}
		// A map[any]any can hold the same integer under several key widths.
		// No entry may silently win the position, so colliding integers all
		// render keyed, ordered by key kind.
		counts := make(map[int64]int, len(ints))
		for _, e := range ints {
			counts[e.key.Int()]++
		}
		byInt := make(map[int64]reflect.Value, len(ints))
		for _, e := range ints {
			if counts[e.key.Int()] > 1 {
				keyed = append(keyed, keyedEntry{key: keyText(e.key), rank: int(e.key.Kind()), value: e.value})
				continue
			}
			byInt[e.key.Int()] = e.value
		}
		var seq []reflect.Value
		for i := int64(1); ; i++ {
			entry, ok := byInt[i]
			if !ok {
				break
			}
			seq = append(seq, entry)
			delete(byInt, i)
		}
		for k, entry := range byInt {
			keyed = append(keyed, keyedEntry{key: strconv.FormatInt(k, 10), rank: int(reflect.Int64), value: entry})
		}
		sortKeyed(keyed)
		return seq, keyed
	}
	return nil, nil
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// keyText is the textual form entries are keyed and sorted by. String keys
// stay bare unless they contain control characters, which would break the
// line-per-entry framing Dump relies on; such keys render quoted. Everything
// else uses its plain printed form.
func keyText(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		s := k.String()
		if keyNeedsQuoting(s) {
			return strconv.Quote(s)
		}
		return s
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(k.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(k.Bool())
	default:
		return fmt.Sprint(k.Interface())
	}
}

func keyNeedsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}

func descriptorOf(v reflect.Value) (any, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if d, ok := v.Interface().(Descriptor); ok {
		return d.LogDescriptor(), true
	}
	return nil, false
}
