package util

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"solar", "Solar"},
		{"Wind", "Wind"},
		{"", ""},
		{"élan", "Élan"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "Hour"); got != "Hour" {
		t.Errorf("Plural(1) = %q", got)
	}
	if got := Plural(3, "Hour"); got != "Hours" {
		t.Errorf("Plural(3) = %q", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := CenterText("ab", 6); got != "  ab  " {
		t.Errorf("CenterText = %q", got)
	}
	if got := CenterText("abc", 6); got != " abc  " {
		t.Errorf("CenterText odd = %q", got)
	}
	if got := CenterText("toolong", 3); got != "toolong" {
		t.Errorf("CenterText overflow = %q", got)
	}
}
