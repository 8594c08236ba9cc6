package epub

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hameln-publish/model"
	"hameln-publish/template"
	"hameln-publish/utils"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

const DefaultLanguage = "ja"

type Options struct {
	// Language is the BCP 47 tag of the book, "ja" when empty.
	Language string
	// Identifier is written as urn:uuid:<Identifier>. A random UUID is used
	// when empty.
	Identifier string
	// Modified defaults to the current time.
	Modified time.Time
	// StyleCSS defaults to template.StyleCSS.
	StyleCSS string
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Identifier == "" {
		o.Identifier = uuid.New().String()
	}
	if o.Modified.IsZero() {
		o.Modified = time.Now()
	}
	if o.StyleCSS == "" {
		o.StyleCSS = template.StyleCSS
	}
	return o
}

// Writer writes one EPUB file per novel.
type Writer struct {
	Options Options
}

// Assemble writes "[author] title.epub" below outputDir.
func (wr *Writer) Assemble(novel *model.Novel, outputDir string) (string, error) {
	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	savePath := filepath.Join(outputDir, utils.BookFileName(plainText(novel.Author), plainText(novel.Title), "epub"))
	file, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("failed to create epub file: %w", err)
	}
	err = Assemble(file, novel, wr.Options)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(savePath)
		return "", err
	}
	log.Debug().Str("path", savePath).Msg("Wrote epub")
	return savePath, nil
}

func episodeLink(i int) string {
	return fmt.Sprintf("Text/episode-%03v.xhtml", i+1)
}

// Assemble writes novel to w as an EPUB 3 archive.
func Assemble(w io.Writer, novel *model.Novel, opts Options) error {
	opts = opts.withDefaults()
	title := plainText(novel.Title)
	author := plainText(novel.Author)

	zipWriter := zip.NewWriter(w)

	// mimetype must be the first entry and stored uncompressed
	err := addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return fmt.Errorf("failed to write mimetype: %w", err)
	}
	err = addComponentToZip(zipWriter, "META-INF/container.xml", template.ContainerXML())
	if err != nil {
		return fmt.Errorf("failed to write container: %w", err)
	}

	navEntries := make([]template.NavEntry, 0, len(novel.Episodes))
	for i, episode := range novel.Episodes {
		episodeTitle := plainText(episode.Title)
		body, err := normalizeBody(episode.Body)
		if err != nil {
			return fmt.Errorf("failed to convert episode %v: %w", i+1, err)
		}
		err = addComponentToZip(zipWriter, "OEBPS/"+episodeLink(i), template.ContentXHTML(opts.Language, episodeTitle, body))
		if err != nil {
			return fmt.Errorf("failed to write episode %v: %w", i+1, err)
		}
		navEntries = append(navEntries, template.NavEntry{Title: episodeTitle, Link: episodeLink(i)})
	}

	err = addComponentToZip(zipWriter, "OEBPS/nav.xhtml", template.NavXHTML(opts.Language, title, navEntries))
	if err != nil {
		return fmt.Errorf("failed to write nav: %w", err)
	}
	err = addComponentToZip(zipWriter, "OEBPS/toc.ncx", tocNCX(opts.Identifier, title, navEntries))
	if err != nil {
		return fmt.Errorf("failed to write toc.ncx: %w", err)
	}
	err = addComponentToZip(zipWriter, "OEBPS/content.opf", contentOPF(opts, title, author, len(novel.Episodes)))
	if err != nil {
		return fmt.Errorf("failed to write content.opf: %w", err)
	}
	err = addStringToZip(zipWriter, "OEBPS/Styles/style.css", opts.StyleCSS, zip.Deflate)
	if err != nil {
		return fmt.Errorf("failed to write style: %w", err)
	}

	return zipWriter.Close()
}

func contentOPF(opts Options, title, author string, episodes int) templ.Component {
	dc := &model.DublinCoreMetadata{
		Titles: []model.DCTitle{
			{
				Value: title,
				ID:    "title",
			},
		},
		Identifiers: []model.DCIdentifier{
			{
				Value: fmt.Sprintf("urn:uuid:%s", opts.Identifier),
				ID:    "book-id",
			},
		},
		Languages: []model.DCLanguage{
			{
				Value: opts.Language,
			},
		},
		Creators: []model.DCCreator{
			{
				Value: author,
				ID:    "creator",
			},
		},
		Metas: []model.DublinCoreMeta{
			{
				Property: "role",
				Refines:  "#creator",
				Value:    "aut",
			},
			{
				Property: "dcterms:modified",
				Value:    opts.Modified.UTC().Format("2006-01-02T15:04:05Z"),
			},
		},
	}

	manifest := &model.Manifest{
		Items: make([]model.ManifestItem, 0, episodes+3),
	}
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:         "nav",
		Link:       "nav.xhtml",
		Media:      "application/xhtml+xml",
		Properties: "nav",
	})
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "ncx",
		Link:  "toc.ncx",
		Media: "application/x-dtbncx+xml",
	})
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "style",
		Link:  "Styles/style.css",
		Media: "text/css",
	})
	for i := 0; i < episodes; i++ {
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    fmt.Sprintf("episode-%03v", i+1),
			Link:  episodeLink(i),
			Media: "application/xhtml+xml",
		})
	}

	spine := &model.Spine{
		Toc:   "ncx",
		Items: make([]model.SpineItem, 0, episodes+1),
	}
	for _, item := range manifest.Items {
		if item.Media == "application/xhtml+xml" {
			spine.Items = append(spine.Items, model.SpineItem{
				IDref: item.ID,
			})
		}
	}

	guide := &model.Guide{
		Items: []model.GuideItem{
			{Title: "目次", Type: "toc", Link: "nav.xhtml"},
		},
	}
	if episodes > 0 {
		guide.Items = append(guide.Items, model.GuideItem{Title: "本文", Type: "text", Link: episodeLink(0)})
	}

	return template.ContentOPF("book-id", opts.Language, dc, manifest, spine, guide)
}

func tocNCX(identifier, title string, entries []template.NavEntry) templ.Component {
	head := &model.TocNCXHead{
		Meta: []model.TocNCXHeadMeta{
			{Name: "dtb:uid", Content: fmt.Sprintf("urn:uuid:%s", identifier)},
			{Name: "dtb:depth", Content: "1"},
		},
	}
	navMap := &model.NavMap{}
	navMap.Add("nav", title, "nav.xhtml")
	for i, entry := range entries {
		navMap.Add(fmt.Sprintf("episode-%03v", i+1), entry.Title, entry.Link)
	}
	return template.TocNCX(title, head, navMap)
}

// plainText decodes the entities of a title scraped from markup.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

func addComponentToZip(zipWriter *zip.Writer, relPath string, component templ.Component) error {
	header := &zip.FileHeader{
		Name:     relPath,
		Method:   zip.Deflate,
		Modified: time.Now(),
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	return component.Render(context.Background(), writer)
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.WriteString(writer, content)
	return err
}
