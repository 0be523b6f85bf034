// Package iofetch implements lifecycle.Fetcher over HTTP.
// This is an impure I/O package: every call goes to the network, there
// is no retry and no caching.
package iofetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"golang.org/x/text/encoding/htmlindex"
)

type fetcher struct {
	client *http.Client
}

// New creates a Fetcher that uses http.DefaultClient.
func New() lifecycle.Fetcher {
	return NewWithClient(http.DefaultClient)
}

// NewWithClient creates a Fetcher with a custom HTTP client.
func NewWithClient(client *http.Client) lifecycle.Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &fetcher{client: client}
}

// Fetch downloads the document at rawURL and decodes it to text.
// Besides http(s), "file://" URLs are read from the local file system.
func (f *fetcher) Fetch(
	ctx context.Context,
	rawURL, encoding string,
) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", URLError(rawURL, errors.New("url is empty"))
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", URLError(rawURL, err)
	}

	var body []byte
	switch u.Scheme {
	case "http", "https":
		body, err = f.get(ctx, rawURL)
	case "file":
		body, err = os.ReadFile(u.Path)
		if err != nil {
			err = RequestError(rawURL, err)
		}
	default:
		err = URLError(rawURL, errors.New("unsupported url scheme"))
	}
	if err != nil {
		return "", err
	}

	return decode(body, encoding)
}

func (f *fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, URLError(rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, RequestError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(rawURL, err)
	}
	return body, nil
}

// decode converts body from the given encoding to a UTF-8 string.
// Empty encoding means UTF-8.
func decode(body []byte, encoding string) (string, error) {
	if encoding == "" {
		encoding = "utf-8"
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", EncodingError(encoding, err)
	}

	res, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", EncodingError(encoding, err)
	}
	return string(res), nil
}
