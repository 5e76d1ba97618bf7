package app

import "unicode"

// inputLine is a single-line text editor with a cursor.
type inputLine struct {
	rs  []rune
	pos int
}

func (l *inputLine) String() string { return string(l.rs) }

func (l *inputLine) Set(s string) {
	l.rs = []rune(s)
	l.pos = len(l.rs)
}

func (l *inputLine) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	l.rs = append(l.rs, 0)
	copy(l.rs[l.pos+1:], l.rs[l.pos:])
	l.rs[l.pos] = r
	l.pos++
	return true
}

func (l *inputLine) Backspace() bool {
	if l.pos == 0 {
		return false
	}
	l.rs = append(l.rs[:l.pos-1], l.rs[l.pos:]...)
	l.pos--
	return true
}

func (l *inputLine) Delete() bool {
	if l.pos >= len(l.rs) {
		return false
	}
	l.rs = append(l.rs[:l.pos], l.rs[l.pos+1:]...)
	return true
}

func (l *inputLine) Left() bool {
	if l.pos == 0 {
		return false
	}
	l.pos--
	return true
}

func (l *inputLine) Right() bool {
	if l.pos >= len(l.rs) {
		return false
	}
	l.pos++
	return true
}

func (l *inputLine) Home() bool {
	moved := l.pos != 0
	l.pos = 0
	return moved
}

func (l *inputLine) End() bool {
	moved := l.pos != len(l.rs)
	l.pos = len(l.rs)
	return moved
}

// window returns the slice of runes to show in cols cells so the cursor stays
// visible, and the cursor column within it.
func (l *inputLine) window(cols int) ([]rune, int) {
	if cols <= 0 {
		return nil, 0
	}
	start := 0
	if l.pos >= cols {
		start = l.pos - cols + 1
	}
	end := start + cols
	if end > len(l.rs) {
		end = len(l.rs)
	}
	return l.rs[start:end], l.pos - start
}

// field is one editable input of the session. good is the text of the last
// successful render pass.
type field struct {
	name string
	in   inputLine
	good string
}

func newField(name, text string) *field {
	f := &field{name: name, good: text}
	f.in.Set(text)
	return f
}

func (f *field) Text() string { return f.in.String() }

func (f *field) revert() bool {
	if f.in.String() == f.good {
		return false
	}
	f.in.Set(f.good)
	return true
}
