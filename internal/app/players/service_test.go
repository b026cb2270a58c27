package players

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/providers/fixture"
	"github.com/preston-bernstein/nba-player-compare/internal/teststubs"
)

func TestResolveKnownPlayerIgnoresCase(t *testing.T) {
	svc := NewService(fixture.New())

	for _, name := range []string{"LeBron James", "Lebron James", "LEBRON JAMES"} {
		p, ok, err := svc.Resolve(context.Background(), name)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if !ok || p.ID != 2544 {
			t.Fatalf("expected %q to resolve to 2544, got %+v (ok=%v)", name, p, ok)
		}
	}
}

func TestResolveUnknownPlayer(t *testing.T) {
	svc := NewService(fixture.New())
	_, ok, err := svc.Resolve(context.Background(), "Nonexistent Player")
	if err != nil || ok {
		t.Fatalf("expected not found, got ok=%v err=%v", ok, err)
	}
}

func TestResolvePrefersFirstDuplicate(t *testing.T) {
	svc := NewService(fixture.New())
	p, ok, err := svc.Resolve(context.Background(), "Marcus Williams")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if p.ID != 200766 {
		t.Fatalf("expected first duplicate 200766, got %d", p.ID)
	}
}

func TestResolveFallsBackToPartialName(t *testing.T) {
	stub := &teststubs.StubProvider{Players: []players.Player{
		{ID: 2544, FullName: "LeBron James"},
		{ID: 1626162, FullName: "Kelly Oubre Jr."},
	}}
	svc := NewService(stub)

	p, ok, err := svc.Resolve(context.Background(), "kelly oubre")
	if err != nil || !ok {
		t.Fatalf("expected partial name to resolve, ok=%v err=%v", ok, err)
	}
	if p.ID != 1626162 || p.FullName != "Kelly Oubre Jr." {
		t.Fatalf("unexpected player %+v", p)
	}
}

func TestResolvePrefersExactOverPartial(t *testing.T) {
	stub := &teststubs.StubProvider{Players: []players.Player{
		{ID: 1, FullName: "Anthony Davis Jr."},
		{ID: 2, FullName: "Anthony Davis"},
	}}
	svc := NewService(stub)

	p, ok, err := svc.Resolve(context.Background(), "Anthony Davis")
	if err != nil || !ok {
		t.Fatalf("expected resolve, ok=%v err=%v", ok, err)
	}
	if p.ID != 2 {
		t.Fatalf("expected exact match to win over earlier partial, got %+v", p)
	}
}

func TestResolveFirstPartialWins(t *testing.T) {
	stub := &teststubs.StubProvider{Players: []players.Player{
		{ID: 10, FullName: "Gary Payton"},
		{ID: 11, FullName: "Gary Payton II"},
	}}
	svc := NewService(stub)

	p, ok, err := svc.Resolve(context.Background(), "payton")
	if err != nil || !ok {
		t.Fatalf("expected resolve, ok=%v err=%v", ok, err)
	}
	if p.ID != 10 {
		t.Fatalf("expected first partial match, got %+v", p)
	}
}

func TestResolveBlankNameDoesNotMatchEveryone(t *testing.T) {
	stub := &teststubs.StubProvider{Players: []players.Player{{ID: 1, FullName: "A B"}}}
	svc := NewService(stub)

	if _, ok, _ := svc.Resolve(context.Background(), "  "); ok {
		t.Fatalf("expected blank name not to resolve")
	}
}

func TestResolveFetchesDirectoryEveryCall(t *testing.T) {
	stub := &teststubs.StubProvider{Players: []players.Player{{ID: 1, FullName: "A B"}}}
	svc := NewService(stub)

	_, _, _ = svc.Resolve(context.Background(), "A B")
	_, _, _ = svc.Resolve(context.Background(), "A B")
	if got := stub.DirectoryCalls.Load(); got != 2 {
		t.Fatalf("expected no memoization (2 calls), got %d", got)
	}
}

func TestResolvePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubProvider{Err: boom})
	if _, _, err := svc.Resolve(context.Background(), "A B"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestSearchMatchesSubstringsInOrder(t *testing.T) {
	svc := NewService(fixture.New())
	names, err := svc.Search(context.Background(), "  jam ", 10)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(names) != 1 || names[0] != "LeBron James" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestSearchLimitsResults(t *testing.T) {
	var dir []players.Player
	for i := 0; i < 25; i++ {
		dir = append(dir, players.Player{ID: i, FullName: fmt.Sprintf("Player %02d", i)})
	}
	svc := NewService(&teststubs.StubProvider{Players: dir})

	names, err := svc.Search(context.Background(), "PLAYER", 10)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(names) != 10 || names[0] != "Player 00" || names[9] != "Player 09" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestSearchBlankQuerySkipsUpstream(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc := NewService(stub)

	names, err := svc.Search(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", names)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no upstream calls, got %d", stub.Calls())
	}
}
