package sllog

// Template grammar: a format string is a sequence of literal characters and
// tag tokens of the form %[modifier-chars]<tag-letter>, where modifier
// characters are digits, '.', '+', '#' and '-'. A '%' that is not followed by
// modifiers and a letter stays literal text. A token whose letter is not a
// recognized tag is dropped entirely.

type segment struct {
	literal string // written verbatim when tag == 0
	tag     byte
	mod     string
}

type template struct {
	text        string
	segs        []segment
	needsCaller bool
}

// compile returns the cached renderer for text, parsing it on first use. The
// memo is keyed by the raw template text; the colorize transform, when
// installed, runs once here and never per render.
func (l *Logger) compile(text string) *template {
	if t, ok := l.templates[text]; ok {
		return t
	}
	src := text
	if l.colorize != nil {
		src = l.colorize(src)
	}
	t := parseTemplate(text, src)
	l.templates[text] = t
	return t
}

func parseTemplate(text, src string) *template {
	t := &template{text: text}
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			t.segs = append(t.segs, segment{literal: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(src); {
		c := src[i]
		if c != '%' {
			lit = append(lit, c)
			i++
			continue
		}
		j := i + 1
		for j < len(src) && isModifierChar(src[j]) {
			j++
		}
		if j >= len(src) || !isTagLetter(src[j]) {
			// Not a tag token; the '%' stays literal.
			lit = append(lit, '%')
			i++
			continue
		}
		mod := src[i+1 : j]
		tag := src[j]
		i = j + 1
		if _, ok := tagEvaluators[tag]; !ok {
			// Unrecognized tag letters vanish, modifiers and all.
			continue
		}
		flush()
		if tag == 'S' || tag == 'f' {
			t.needsCaller = true
		}
		t.segs = append(t.segs, segment{tag: tag, mod: mod})
	}
	flush()
	return t
}

func isModifierChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '+' || c == '#' || c == '-':
		return true
	}
	return false
}

func isTagLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (t *template) render(l *Logger, levelIndex int, caller *callerInfo) string {
	if len(t.segs) == 0 {
		return ""
	}
	buf := make([]byte, 0, 64)
	for _, s := range t.segs {
		if s.tag == 0 {
			buf = append(buf, s.literal...)
			continue
		}
		buf = append(buf, tagEvaluators[s.tag](l, levelIndex, s.mod, caller)...)
	}
	return string(buf)
}
