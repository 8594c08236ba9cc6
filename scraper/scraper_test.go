package scraper

import (
	"errors"
	"testing"
)

const page = `<html><head><title>T</title></head><body>
<div>作者：<a href=//syosetu.org/user/123>A</a></div>
`

func TestScrape_NoEpisodes(t *testing.T) {
	novel, err := Scrape("<title>T</title>...href=//syosetu.org/user/123>A</a>...")
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if novel.Title != "T" || novel.Author != "A" {
		t.Errorf("Scrape() = %q / %q, want T / A", novel.Title, novel.Author)
	}
	if novel.Episodes == nil || len(novel.Episodes) != 0 {
		t.Errorf("Episodes = %#v, want empty slice", novel.Episodes)
	}
}

func TestScrape_OneEpisode(t *testing.T) {
	doc := page + `<span style="font-size:large">Ch1</span>` + `<div class="honbun">Body1</div>` + "\n"
	novel, err := Scrape(doc)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(novel.Episodes) != 1 {
		t.Fatalf("got %d episodes, want 1", len(novel.Episodes))
	}
	if ep := novel.Episodes[0]; ep.Title != "Ch1" || ep.Body != "Body1" {
		t.Errorf("episode = %+v, want Ch1 / Body1", ep)
	}
}

func TestScrape_EpisodesInOrder(t *testing.T) {
	doc := page +
		`<span style="font-size:large">第一話</span><div id="honbun"><div class="honbun"><p>一</p></div>` + "\n" +
		`<span style="font-size:large">第二話</span><div class="honbun"><p>二</p><br></div>` + "\n" +
		`<span style="font-size:large">第三話</span><div class="honbun">未完`
	novel, err := Scrape(doc)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	want := []struct{ title, body string }{
		{"第一話", "<p>一</p>"},
		{"第二話", "<p>二</p><br>"},
	}
	if len(novel.Episodes) != len(want) {
		t.Fatalf("got %d episodes, want %d", len(novel.Episodes), len(want))
	}
	for i, w := range want {
		if ep := novel.Episodes[i]; ep.Title != w.title || ep.Body != w.body {
			t.Errorf("episode %d = %+v, want %s / %s", i, ep, w.title, w.body)
		}
	}
}

func TestScrape_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Field
	}{
		{"no title", `<a href=//syosetu.org/user/1>A</a>`, FieldTitle},
		{"unclosed title", `<title>T`, FieldTitle},
		{"no author link", `<title>T</title><a href=/x>A</a>`, FieldAuthorAnchor},
		{"author link before title", `<a href=//syosetu.org/user/1>A</a><title>T</title>`, FieldAuthorAnchor},
		{"unclosed author", `<title>T</title><a href=//syosetu.org/user/1>A`, FieldAuthor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			novel, err := Scrape(tt.doc)
			if novel != nil {
				t.Errorf("Scrape() returned partial novel %+v", novel)
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("Scrape() error = %v, want *MissingFieldError", err)
			}
			if mf.Field != tt.want {
				t.Errorf("Field = %v, want %v", mf.Field, tt.want)
			}
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("errors.Is(%v, ErrMissingField) = false", err)
			}
		})
	}
}

func TestScrape_UserIdWithoutDigits(t *testing.T) {
	novel, err := Scrape(`<title>T</title><a href=//syosetu.org/user/>Anon</a>`)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if novel.Author != "Anon" {
		t.Errorf("Author = %q, want Anon", novel.Author)
	}
}

func TestScraper_CustomLayout(t *testing.T) {
	s := &Scraper{Layout: Layout{
		Title:        Pair{Start: "[t]", End: "[/t]"},
		AuthorAnchor: "@",
		Author:       Pair{Start: ":", End: ";"},
		EpisodeTitle: Pair{Start: "#", End: "#"},
		EpisodeBody:  Pair{Start: "{", End: "}"},
	}}
	novel, err := s.Scrape("[t]Book[/t]@42:Me;#one#{body}#two#{more}")
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if novel.Title != "Book" || novel.Author != "Me" || len(novel.Episodes) != 2 {
		t.Fatalf("Scrape() = %+v", novel)
	}
	if novel.Episodes[1].Body != "more" {
		t.Errorf("second body = %q, want more", novel.Episodes[1].Body)
	}
}

func TestFieldString(t *testing.T) {
	if got := (&MissingFieldError{Field: FieldAuthorAnchor}).Error(); got != "failed to get author anchor" {
		t.Errorf("Error() = %q", got)
	}
}
