package scraper

import (
	"iter"

	"hameln-publish/model"
)

// Pair is an opening and closing marker around one field.
type Pair struct {
	Start string
	End   string
}

// EpisodeScanner carves episodes out of a page one at a time. It only moves
// forward; once it fails to find a complete episode it stays exhausted.
type EpisodeScanner struct {
	rest  string
	title Pair
	body  Pair
	done  bool
}

func NewEpisodeScanner(text string, title, body Pair) *EpisodeScanner {
	return &EpisodeScanner{
		rest:  text,
		title: title,
		body:  body,
	}
}

// Next returns the next episode. A missing title block or an unterminated
// body both end the sequence.
func (s *EpisodeScanner) Next() (model.Episode, bool) {
	if s.done {
		return model.Episode{}, false
	}
	title, rest, ok := Between(s.rest, s.title.Start, s.title.End)
	if !ok {
		s.done = true
		return model.Episode{}, false
	}
	body, rest, ok := Between(rest, s.body.Start, s.body.End)
	if !ok {
		s.done = true
		return model.Episode{}, false
	}
	s.rest = rest
	return model.Episode{Title: title, Body: body}, true
}

// All ranges over the episodes this scanner has not produced yet.
func (s *EpisodeScanner) All() iter.Seq[model.Episode] {
	return func(yield func(model.Episode) bool) {
		for {
			ep, ok := s.Next()
			if !ok || !yield(ep) {
				return
			}
		}
	}
}

// Rest is the text after the last episode returned.
func (s *EpisodeScanner) Rest() string {
	return s.rest
}
