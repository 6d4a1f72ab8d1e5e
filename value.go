// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import "strconv"

// Kind discriminates the shapes a scalar [Value] may take.
//
// The zero Kind is deliberately not a shape: a Value must be built through
// one of the constructors to pass the shape gate, so an uninitialized Value
// is rejected by [Value.Valid] instead of silently reading as Empty.
type Kind uint8

const (
	// KindEmpty is the nil/absence marker.
	KindEmpty Kind = iota + 1
	// KindTag is an interned symbolic label. The boolean literals are
	// tags, not a shape of their own; see [NewBool].
	KindTag
	// KindText is a character sequence.
	KindText
	// KindNumber is a signed 64-bit integer.
	KindNumber
)

// String returns the shape name, or "Kind(n)" for an out-of-range value.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindTag:
		return "Tag"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	}
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Value is the closed scalar sum type a [Cell] holds: exactly one of
// Empty, Tag, Text, or Number at every observable instant.
//
// Value is comparable; two Values are equal iff they have the same shape
// and the same payload. Composite shapes are unrepresentable by
// construction, so the runtime gate only ever fires on uninitialized or
// foreign state.
type Value struct {
	kind Kind
	num  int64
	str  string
}

// Empty returns the absence marker.
func Empty() Value {
	return Value{kind: KindEmpty}
}

// NewTag returns a tag value with the given label.
func NewTag(name string) Value {
	return Value{kind: KindTag, str: name}
}

// NewText returns a text value.
func NewText(s string) Value {
	return Value{kind: KindText, str: s}
}

// NewNumber returns a number value.
func NewNumber(n int64) Value {
	return Value{kind: KindNumber, num: n}
}

// NewBool returns the tag spelled "true" or "false".
// Booleans are not a fifth shape: NewBool(true) == NewTag("true").
func NewBool(b bool) Value {
	if b {
		return NewTag("true")
	}
	return NewTag("false")
}

// Kind returns the shape discriminator.
func (v Value) Kind() Kind {
	return v.kind
}

// Tag returns the tag label. Meaningful only when Kind is [KindTag].
func (v Value) Tag() string {
	return v.str
}

// Text returns the text payload. Meaningful only when Kind is [KindText].
func (v Value) Text() string {
	return v.str
}

// Int returns the numeric payload. Meaningful only when Kind is [KindNumber].
func (v Value) Int() int64 {
	return v.num
}

// IsEmpty reports whether v is the absence marker.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Valid is the shape gate: it reports whether v is one of the four legal
// scalar shapes. The switch is exhaustive over [Kind]; anything else,
// including the zero Value, fails.
func (v Value) Valid() bool {
	switch v.kind {
	case KindEmpty, KindTag, KindText, KindNumber:
		return true
	}
	return false
}

// String renders v for diagnostics: "empty", ":tag", a quoted text, or a
// decimal number.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return "empty"
	case KindTag:
		return ":" + v.str
	case KindText:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatInt(v.num, 10)
	}
	return "invalid"
}
