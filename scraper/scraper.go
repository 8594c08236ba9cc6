// Package scraper extracts a novel from the raw "view all" page of Hameln.
//
// Extraction is plain substring search over the page text. Every string in
// the result is a slice of the page, nothing is copied.
package scraper

import (
	"slices"

	"hameln-publish/model"
)

// Layout names the markers that delimit each field on the page.
type Layout struct {
	Title        Pair
	AuthorAnchor string
	Author       Pair
	EpisodeTitle Pair
	EpisodeBody  Pair
}

// DefaultLayout matches the syosetu.org "view all" page.
var DefaultLayout = Layout{
	Title:        Pair{Start: "<title>", End: "</title>"},
	AuthorAnchor: "href=//syosetu.org/user/",
	Author:       Pair{Start: ">", End: "</a>"},
	EpisodeTitle: Pair{Start: `<span style="font-size:large">`, End: "</span>"},
	EpisodeBody:  Pair{Start: `<div class="honbun">`, End: "</div>\n"},
}

type Scraper struct {
	Layout Layout
}

func New() *Scraper {
	return &Scraper{Layout: DefaultLayout}
}

// Scrape runs doc through DefaultLayout.
func Scrape(doc string) (*model.Novel, error) {
	return New().Scrape(doc)
}

// Scrape extracts title, author and episodes in that order. A missing title,
// author link or author name aborts with a *MissingFieldError. Running out of
// episodes is not an error, the novel may have none.
func (s *Scraper) Scrape(doc string) (*model.Novel, error) {
	l := s.Layout

	title, rest, ok := Between(doc, l.Title.Start, l.Title.End)
	if !ok {
		return nil, &MissingFieldError{Field: FieldTitle}
	}
	rest, ok = SkipPast(rest, l.AuthorAnchor)
	if !ok {
		return nil, &MissingFieldError{Field: FieldAuthorAnchor}
	}
	// user id
	rest = SkipWhile(rest, isDecimalDigit)
	author, rest, ok := Between(rest, l.Author.Start, l.Author.End)
	if !ok {
		return nil, &MissingFieldError{Field: FieldAuthor}
	}

	episodes := slices.Collect(NewEpisodeScanner(rest, l.EpisodeTitle, l.EpisodeBody).All())
	if episodes == nil {
		episodes = []model.Episode{}
	}

	return &model.Novel{
		Title:    title,
		Author:   author,
		Episodes: episodes,
	}, nil
}
