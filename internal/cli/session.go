// Package cli runs the interactive terminal comparison loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-player-compare/internal/app/compare"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
)

// errEndOfInput ends the session cleanly when the input stream closes.
var errEndOfInput = errors.New("end of input")

// PlayerLookup loads one player's season.
type PlayerLookup interface {
	GetPlayerData(ctx context.Context, name string, year int) (compare.Lookup, bool, error)
}

// Session is one interactive run over a reader and writer.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	lookup PlayerLookup
	logger *slog.Logger
}

// NewSession builds a session reading answers from in and writing prompts to out.
func NewSession(in io.Reader, out io.Writer, lookup PlayerLookup, logger *slog.Logger) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		lookup: lookup,
		logger: logger,
	}
}

// Run greets the user and compares player pairs until they decline or input ends.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.welcome(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		name1, name2, year, err := s.selectPlayers()
		if err != nil {
			return err
		}

		first, second, found, err := s.fetchPair(ctx, name1, name2, year)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logging.Error(s.logger, "player lookup failed", err, logging.FieldSeason, year)
			s.printf("An error occurred: %v. Please try again.\n", err)
			continue
		}
		if !found {
			s.println("One or both players do not have data for the specified season. Please try again.")
			continue
		}

		s.report(first, second, year)
		again, err := s.compareMore()
		if err != nil || !again {
			return err
		}
	}
}

// fetchPair looks both players up in order; found is false unless both have the season.
func (s *Session) fetchPair(ctx context.Context, name1, name2 string, year int) (compare.Lookup, compare.Lookup, bool, error) {
	first, firstOK, err := s.lookup.GetPlayerData(ctx, name1, year)
	if err != nil {
		return first, compare.Lookup{}, false, err
	}
	second, secondOK, err := s.lookup.GetPlayerData(ctx, name2, year)
	if err != nil {
		return first, second, false, err
	}
	return first, second, firstOK && secondOK, nil
}

func (s *Session) welcome() error {
	for {
		name, err := s.prompt("Enter your Name: ")
		if err != nil {
			return err
		}
		if name != "" {
			s.println(name + ", welcome to the NBA Seasonal Average Comparison Program. Please input the names of two players you wish to compare.")
			return nil
		}
		s.println("Error. Please enter your name.")
	}
}

func (s *Session) selectPlayers() (string, string, int, error) {
	name1, err := s.promptPlayer("first")
	if err != nil {
		return "", "", 0, err
	}
	name2, err := s.promptPlayer("second")
	if err != nil {
		return "", "", 0, err
	}
	year, err := s.promptSeason()
	if err != nil {
		return "", "", 0, err
	}
	return name1, name2, year, nil
}

func (s *Session) promptPlayer(ordinal string) (string, error) {
	for {
		raw, err := s.prompt("Enter the " + ordinal + " player's name: ")
		if err != nil {
			return "", err
		}
		if players.ValidateFullName(raw) == nil {
			return players.NormalizeName(raw), nil
		}
		s.println("Error. Please enter the " + ordinal + " player's first and last name.")
	}
}

func (s *Session) promptSeason() (int, error) {
	for {
		raw, err := s.prompt("Enter the season (year): ")
		if err != nil {
			return 0, err
		}
		year, err := seasons.ParseYear(raw)
		if err != nil {
			s.println("Error. Please enter the season as a year, for example 2020.")
			continue
		}
		if seasons.ValidateYear(year) != nil {
			s.printf("Error. Season must be between %d and %d.\n", seasons.MinYear, seasons.MaxYear)
			continue
		}
		return year, nil
	}
}

func (s *Session) report(first, second compare.Lookup, year int) {
	for _, l := range []compare.Lookup{first, second} {
		s.printf("\n%s's season averages for %d:\n", l.Name, year)
		for _, f := range l.Row.Fields() {
			s.printf("%s: %s\n", f.Name, seasons.FormatValue(f.Value))
		}
	}
	s.println("\n" + compare.PointsSummary(first.Name, second.Name, first.Row, second.Row))
}

func (s *Session) compareMore() (bool, error) {
	for {
		answer, err := s.prompt("Do you want to compare more players? (yes/no): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		s.println("Invalid input. Please enter 'yes' or 'no'.")
	}
}

// prompt writes label and returns the next trimmed input line.
func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		s.println("")
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
