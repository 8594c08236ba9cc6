package scraper

import (
	"strings"
	"testing"

	"hameln-publish/model"
)

var (
	testTitle = Pair{Start: "<h>", End: "</h>"}
	testBody  = Pair{Start: "<p>", End: "</p>"}
)

func collect(s *EpisodeScanner) []model.Episode {
	var out []model.Episode
	for ep := range s.All() {
		out = append(out, ep)
	}
	return out
}

func TestEpisodeScanner_TwoEpisodes(t *testing.T) {
	s := NewEpisodeScanner("x<h>one</h>..<p>first</p>y<h>two</h><p>second</p>z", testTitle, testBody)
	got := collect(s)
	want := []model.Episode{{Title: "one", Body: "first"}, {Title: "two", Body: "second"}}
	if len(got) != len(want) {
		t.Fatalf("got %d episodes, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("episode %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s.Rest() != "z" {
		t.Errorf("Rest() = %q, want %q", s.Rest(), "z")
	}
}

func TestEpisodeScanner_Empty(t *testing.T) {
	s := NewEpisodeScanner("no episodes here", testTitle, testBody)
	if _, ok := s.Next(); ok {
		t.Fatal("expected no episode")
	}
}

func TestEpisodeScanner_DanglingBlock(t *testing.T) {
	s := NewEpisodeScanner("<h>one</h><p>first</p><h>two</h><p>unterminated", testTitle, testBody)
	got := collect(s)
	if len(got) != 1 || got[0].Title != "one" {
		t.Fatalf("got %+v, want only the first episode", got)
	}
}

func TestEpisodeScanner_TitleWithoutBody(t *testing.T) {
	s := NewEpisodeScanner("<h>one</h><p>first</p><h>two</h>", testTitle, testBody)
	if got := collect(s); len(got) != 1 {
		t.Fatalf("got %d episodes, want 1", len(got))
	}
}

func TestEpisodeScanner_StaysExhausted(t *testing.T) {
	s := NewEpisodeScanner("<h>one</h><p>first</p>", testTitle, testBody)
	if _, ok := s.Next(); !ok {
		t.Fatal("expected first episode")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected end of episodes")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("scanner restarted after exhaustion")
	}
}

func TestEpisodeScanner_ForwardOnly(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("<h>t</h>junk<p>b</p>\n")
	}
	doc := b.String()
	s := NewEpisodeScanner(doc, testTitle, testBody)
	prev := len(doc) + 1
	n := 0
	for {
		_, ok := s.Next()
		if !ok {
			break
		}
		n++
		if len(s.Rest()) >= prev {
			t.Fatalf("window did not shrink after episode %d", n)
		}
		prev = len(s.Rest())
	}
	if n != 50 {
		t.Errorf("got %d episodes, want 50", n)
	}
}

func TestEpisodeScanner_BreakEarly(t *testing.T) {
	s := NewEpisodeScanner("<h>1</h><p>a</p><h>2</h><p>b</p>", testTitle, testBody)
	for range s.All() {
		break
	}
	ep, ok := s.Next()
	if !ok || ep.Title != "2" {
		t.Errorf("Next() after break = (%+v, %v), want second episode", ep, ok)
	}
}
