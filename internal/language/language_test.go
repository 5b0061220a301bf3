package language_test

import (
	"testing"

	"scribe/internal/language"
)

func TestToISO2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"eng", "en"},
		{"English", "en"},
		{" german ", "de"},
		{"POR", "pt"},
		{"", ""},
		{"klingon", ""},
	}
	for _, tc := range cases {
		if got := language.ToISO2(tc.in); got != tc.want {
			t.Errorf("ToISO2(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := language.Display("ja"); got != "Japanese" {
		t.Fatalf("Display(ja) = %q", got)
	}
	if got := language.Display("xx"); got != "" {
		t.Fatalf("Display(xx) = %q, want empty", got)
	}
}

func TestKnown(t *testing.T) {
	if !language.Known("dutch") {
		t.Fatal("dutch should be known")
	}
	if language.Known("") {
		t.Fatal("empty value should not be known")
	}
}
