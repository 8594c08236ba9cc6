package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hameln-publish/model"
	"hameln-publish/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Writer writes one plain text file per novel.
type Writer struct{}

// Assemble writes "[author] title.txt" below outputDir.
func (Writer) Assemble(novel *model.Novel, outputDir string) (string, error) {
	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	title := strings.TrimSpace(html.UnescapeString(novel.Title))
	author := strings.TrimSpace(html.UnescapeString(novel.Author))
	savePath := filepath.Join(outputDir, utils.BookFileName(author, title, "txt"))
	file, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("failed to create text file: %w", err)
	}
	err = Write(file, novel)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(savePath)
		return "", err
	}
	log.Debug().Str("path", savePath).Msg("Wrote text")
	return savePath, nil
}

// Write renders novel as plain text: a header followed by every episode.
func Write(w io.Writer, novel *model.Novel) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%s\n", strings.TrimSpace(html.UnescapeString(novel.Title)), strings.TrimSpace(html.UnescapeString(novel.Author)))
	for i, episode := range novel.Episodes {
		body, err := BodyText(episode.Body)
		if err != nil {
			return fmt.Errorf("failed to convert episode %v: %w", i+1, err)
		}
		fmt.Fprintf(bw, "\n\n%s\n\n%s\n", strings.TrimSpace(html.UnescapeString(episode.Title)), body)
	}
	return bw.Flush()
}

// BodyText extracts the text of an episode body. Paragraphs and <br> end a
// line; ruby readings are dropped.
func BodyText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	body.Find("rt, rp, script, style, img").Remove()
	// layout whitespace between paragraphs
	body.Contents().Each(func(i int, s *goquery.Selection) {
		if n := s.Get(0); n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			s.Remove()
		}
	})
	body.Find("br").ReplaceWithNodes(newline())
	body.Find("p").Each(func(i int, s *goquery.Selection) {
		s.AppendNodes(newline())
	})
	text := body.Text()
	return strings.TrimRight(text, "\n"), nil
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
