package players

import (
	"errors"
	"testing"
)

func TestNormalizeNameCollapsesWhitespaceAndCapitalizes(t *testing.T) {
	if got := NormalizeName("  lebron   james "); got != "Lebron James" {
		t.Fatalf("expected Lebron James, got %q", got)
	}
	if got := NormalizeName("KEVIN DURANT"); got != "Kevin Durant" {
		t.Fatalf("expected Kevin Durant, got %q", got)
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	once := NormalizeName("stephen curry")
	if twice := NormalizeName(once); twice != once {
		t.Fatalf("expected %q to be stable, got %q", once, twice)
	}
}

func TestNormalizeNameEmpty(t *testing.T) {
	if got := NormalizeName("   "); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestValidateFullName(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"LeBron James", nil},
		{"  lebron   james ", nil},
		{"", ErrNameRequired},
		{"   ", ErrNameRequired},
		{"LeBron", ErrFullNameRequired},
	}
	for _, tc := range cases {
		if err := ValidateFullName(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("input %q expected %v, got %v", tc.input, tc.want, err)
		}
	}
}
