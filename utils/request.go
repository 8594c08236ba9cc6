package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0"

type RestyOptions struct {
	RetryCount int
	RetryWait  time.Duration
	Timeout    time.Duration
	UserAgent  string
}

func NewRestyClient(opts RestyOptions) *resty.Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	client := resty.New()
	client.SetLogger(zerologLogger{})
	client.SetTimeout(opts.Timeout)
	client.SetHeader("Accept-Charset", "utf-8")
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			if resp.StatusCode() == http.StatusTooManyRequests {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if seconds, err := strconv.Atoi(retryAfter); err == nil {
						return time.Duration(seconds) * time.Second, nil
					}
					if t, err := http.ParseTime(retryAfter); err == nil {
						return time.Until(t), nil
					}
				}
			}
			return opts.RetryWait, nil
		}).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	return client
}

type zerologLogger struct{}

func (zerologLogger) Errorf(format string, v ...interface{}) { log.Error().Msgf(format, v...) }
func (zerologLogger) Warnf(format string, v ...interface{})  { log.Warn().Msgf(format, v...) }
func (zerologLogger) Debugf(format string, v ...interface{}) { log.Debug().Msgf(format, v...) }
