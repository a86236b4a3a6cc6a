package features

// ValueKind identifies the dynamic type of a feature value.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindText
	KindBool
)

// Value is a dynamically typed feature value. Numeric features (including
// integer ones like page or word counts) are carried as float64 so that
// threshold comparisons need no conversions.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

// Number creates a numeric value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Text creates a string value.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the dynamic type of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Num returns the numeric payload (0 for non-numeric values).
func (v Value) Num() float64 {
	return v.num
}

// Str returns the string payload ("" for non-string values).
func (v Value) Str() string {
	return v.str
}

// Bool returns the boolean payload (false for non-boolean values).
func (v Value) Bool() bool {
	return v.b
}
