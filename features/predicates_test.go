package features

import "testing"

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"INTRODUCTION", true},
		{"SECTION 2", true},
		{"Introduction", false},
		{"INTRODUCTION to go", false},
		{"OK", false},     // too short
		{"II", false},     // too short
		{"123", false},    // no cased letters
		{"...", false},    // no cased letters
		{"", false},
		{"A B C", true},
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.text, 3); got != tt.expected {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"Introduction To Layout Analysis", true},
		{"AI Overview", true}, // acronyms survive
		{"Introduction to layout", false},
		{"1. Results", true},
		{"", false},
		{"1234", false}, // no letters
	}

	for _, tt := range tests {
		if got := isTitleCase(tt.text); got != tt.expected {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestEndsWithPunctuation(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"This is a sentence.", true},
		{"Really!", true},
		{"Why?", true},
		{"First;", true},
		{"Note:", true},
		{"A heading", false},
		{"Trailing comma,", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := endsWithPunctuation(tt.text); got != tt.expected {
			t.Errorf("endsWithPunctuation(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestStartsWithNumberOrBullet(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"1. Introduction", true},
		{"2.3 Results", true},
		{"2.3.1 Detailed results", true},
		{"- bullet item", true},
		{"* starred item", true},
		{"• bullet glyph", true},
		{"Introduction", false},
		{"1Introduction", false}, // no whitespace after enumerator
		{"v1.2 release", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := startsWithNumberOrBullet(tt.text); got != tt.expected {
			t.Errorf("startsWithNumberOrBullet(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}
