package models

import "testing"

func TestProfile_FullName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"simple", "Ada", "Lovelace", "Ada Lovelace"},
		{"accented", "Léa", "Müller", "Léa Müller"},
		{"empty last", "Cher", "", "Cher "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{FirstName: tt.first, LastName: tt.last}
			if got := p.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfile_ContactLine(t *testing.T) {
	p := Profile{FirstName: "Ada", LastName: "Lovelace", Phone: "555-1234"}
	if got := p.ContactLine(); got != "Text Ada Lovelace at 555-1234" {
		t.Errorf("ContactLine() = %q", got)
	}
}
