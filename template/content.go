package template

import (
	"context"
	"fmt"
	"io"

	"hameln-publish/model"

	"github.com/a-h/templ"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// NavEntry is one line of the table of contents.
type NavEntry struct {
	Title string
	Link  string
}

func writeAll(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

// ContentXHTML renders one page. body must already be well formed XHTML.
func ContentXHTML(lang, title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			xmlHeader,
			`<!DOCTYPE html>`+"\n",
			`<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="`, templ.EscapeString(lang), `" lang="`, templ.EscapeString(lang), `">`+"\n",
			"<head>\n",
			`<meta charset="UTF-8"/>`+"\n",
			"<title>", templ.EscapeString(title), "</title>\n",
			`<link rel="stylesheet" type="text/css" href="../Styles/style.css"/>`+"\n",
			"</head>\n",
			"<body>\n",
			"<h1>", templ.EscapeString(title), "</h1>\n",
			`<div class="honbun">`, body, "</div>\n",
			"</body>\n",
			"</html>\n",
		)
	})
}

// NavXHTML renders the navigation document, which doubles as the inline
// table of contents.
func NavXHTML(lang, title string, entries []NavEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			xmlHeader,
			`<!DOCTYPE html>`+"\n",
			`<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="`, templ.EscapeString(lang), `" lang="`, templ.EscapeString(lang), `">`+"\n",
			"<head>\n",
			`<meta charset="UTF-8"/>`+"\n",
			"<title>", templ.EscapeString(title), "</title>\n",
			`<link rel="stylesheet" type="text/css" href="Styles/style.css"/>`+"\n",
			"</head>\n",
			"<body>\n",
			`<nav epub:type="toc" id="toc">`+"\n",
			"<h1>", templ.EscapeString(title), "</h1>\n",
			"<ol>\n",
		)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			err = writeAll(w, `<li><a href="`, templ.EscapeString(entry.Link), `">`, templ.EscapeString(entry.Title), "</a></li>\n")
			if err != nil {
				return err
			}
		}
		return writeAll(w, "</ol>\n", "</nav>\n", "</body>\n", "</html>\n")
	})
}

func ContainerXML() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			xmlHeader,
			`<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">`+"\n",
			"  <rootfiles>\n",
			`    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>`+"\n",
			"  </rootfiles>\n",
			"</container>\n",
		)
	})
}

// ContentOPF renders the package document. guide may be nil.
func ContentOPF(uniqueIdentifier, lang string, dc *model.DublinCoreMetadata, manifest *model.Manifest, spine *model.Spine, guide *model.Guide) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		dcXML, err := dc.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		manifestXML, err := manifest.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		spineXML, err := spine.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal spine: %w", err)
		}
		guideXML := ""
		if guide != nil {
			guideXML, err = guide.Marshal()
			if err != nil {
				return fmt.Errorf("failed to marshal guide: %w", err)
			}
			guideXML += "\n"
		}
		return writeAll(w,
			xmlHeader,
			`<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="3.0" unique-identifier="`, templ.EscapeString(uniqueIdentifier), `" xml:lang="`, templ.EscapeString(lang), `">`+"\n",
			dcXML, "\n",
			manifestXML, "\n",
			spineXML, "\n",
			guideXML,
			"</package>\n",
		)
	})
}

func TocNCX(title string, head *model.TocNCXHead, navMap *model.NavMap) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		headXML, err := head.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal ncx head: %w", err)
		}
		navMapXML, err := navMap.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal nav map: %w", err)
		}
		return writeAll(w,
			xmlHeader,
			`<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">`+"\n",
			headXML, "\n",
			"  <docTitle><text>", templ.EscapeString(title), "</text></docTitle>\n",
			navMapXML, "\n",
			"</ncx>\n",
		)
	})
}
