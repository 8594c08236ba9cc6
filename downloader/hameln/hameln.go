package hameln

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hameln-publish/model"
	"hameln-publish/scraper"
	"hameln-publish/utils"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const DefaultBaseURL = "https://syosetu.org"

// ErrFetch matches every *FetchError.
var ErrFetch = errors.New("fetch failed")

// FetchError is returned when the page of a novel could not be retrieved or
// decoded.
type FetchError struct {
	NovelId    int
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return fmt.Sprintf("failed to get novel %v: %v %v", e.NovelId, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("failed to get novel %v: %v", e.NovelId, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
}

type Hameln struct {
	baseURL     string
	restyClient *resty.Client
}

func New(opts Options) *Hameln {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Hameln{
		baseURL: baseURL,
		restyClient: utils.NewRestyClient(utils.RestyOptions{
			RetryCount: opts.RetryCount,
			RetryWait:  opts.RetryWait,
			Timeout:    opts.Timeout,
			UserAgent:  opts.UserAgent,
		}),
	}
}

// URL is the page that lists every episode of a novel.
func (h *Hameln) URL(novelId int) string {
	return fmt.Sprintf("%s/?mode=ss_view_all&nid=%v", h.baseURL, novelId)
}

// GetPage downloads the "view all" page of a novel and decodes it to UTF-8.
func (h *Hameln) GetPage(ctx context.Context, novelId int) (string, error) {
	url := h.URL(novelId)
	log.Debug().Int("novel", novelId).Str("url", url).Msg("Getting page")

	resp, err := h.restyClient.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &FetchError{NovelId: novelId, URL: url, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &FetchError{
			NovelId:    novelId,
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status: %v", resp.Status()),
		}
	}

	page, err := decode(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return "", &FetchError{NovelId: novelId, URL: url, StatusCode: resp.StatusCode(), Err: err}
	}
	return page, nil
}

// GetNovel downloads and scrapes a novel. The returned novel slices the
// downloaded page.
func (h *Hameln) GetNovel(ctx context.Context, novelId int) (*model.Novel, error) {
	page, err := h.GetPage(ctx, novelId)
	if err != nil {
		return nil, err
	}
	novel, err := scraper.Scrape(page)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape novel %v: %w", novelId, err)
	}
	return novel, nil
}

func decode(body []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to decode page: %w", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode page: %w", err)
	}
	return string(decoded), nil
}
