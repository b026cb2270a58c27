package players

import (
	"errors"
	"strings"
)

var (
	// ErrNameRequired is returned when a player name is blank.
	ErrNameRequired = errors.New("player name required")
	// ErrFullNameRequired is returned when a player name has no first/last split.
	ErrFullNameRequired = errors.New("player first and last name required")
)

// Player is a directory entry as supplied by the stats provider.
type Player struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// NormalizeName produces the canonical "First Last" form used for lookups.
func NormalizeName(raw string) string {
	tokens := strings.Fields(strings.ToLower(raw))
	for i, tok := range tokens {
		tokens[i] = capitalize(tok)
	}
	return strings.Join(tokens, " ")
}

// ValidateFullName enforces the interactive front end's rule that a name carries a space.
func ValidateFullName(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrNameRequired
	}
	if !strings.ContainsAny(trimmed, " \t") {
		return ErrFullNameRequired
	}
	return nil
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(tok string) string {
	if tok == "" {
		return tok
	}
	runes := []rune(tok)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
