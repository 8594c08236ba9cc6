package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"hameln-publish/model"
	"hameln-publish/scraper"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

type Options struct {
	OutputPath string
	// FailFast stops the batch at the first novel that fails. Otherwise
	// every id is attempted and the failures are returned together.
	FailFast bool
}

// Result describes the outcome for one novel id.
type Result struct {
	NovelId  int
	Path     string
	Title    string
	Author   string
	Episodes int
	Size     int64
	Err      error
}

type Downloader struct {
	fetcher   model.Fetcher
	assembler model.Assembler
	opts      Options
}

func New(fetcher model.Fetcher, assembler model.Assembler, opts Options) *Downloader {
	return &Downloader{
		fetcher:   fetcher,
		assembler: assembler,
		opts:      opts,
	}
}

// Download processes ids one after another. Each novel is fetched, scraped
// and assembled on its own; the page buffer is dropped once its file is
// written.
func (d *Downloader) Download(ctx context.Context, ids []int) ([]Result, error) {
	results := make([]Result, 0, len(ids))
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		result := d.DownloadNovel(ctx, id)
		results = append(results, result)
		if result.Err != nil {
			log.Error().Err(result.Err).Int("novel", id).Msg("Failed to download novel")
			errs = append(errs, result.Err)
			if d.opts.FailFast {
				break
			}
			continue
		}
		log.Info().
			Int("novel", id).
			Int("episodes", result.Episodes).
			Str("size", humanize.Bytes(uint64(result.Size))).
			Msgf("Saved %s", result.Path)
	}
	return results, errors.Join(errs...)
}

func (d *Downloader) DownloadNovel(ctx context.Context, novelId int) Result {
	log.Info().Int("novel", novelId).Msg("Downloading novel")
	result := Result{NovelId: novelId}

	page, err := d.fetcher.GetPage(ctx, novelId)
	if err != nil {
		result.Err = err
		return result
	}
	log.Debug().Int("novel", novelId).Str("size", humanize.Bytes(uint64(len(page)))).Msg("Got page")

	novel, err := scraper.Scrape(page)
	if err != nil {
		result.Err = fmt.Errorf("failed to scrape novel %v: %w", novelId, err)
		return result
	}
	// cloned so that results do not pin the page
	result.Title = strings.Clone(novel.Title)
	result.Author = strings.Clone(novel.Author)
	result.Episodes = len(novel.Episodes)

	path, err := d.assembler.Assemble(novel, d.opts.OutputPath)
	if err != nil {
		result.Err = fmt.Errorf("failed to assemble novel %v: %w", novelId, err)
		return result
	}
	result.Path = path
	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}
	return result
}
