package iofetch

import (
	"fmt"
	"runtime"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// URLError is returned when no URL is given, or the URL cannot be used.
func URLError(url string, err error) error {
	msg := `Please provide a valid URL, given: '<em>%s</em>'

<em>How to fix:</em>
  1. Check <em>schema.sql_url</em> and <em>schema.fields_url</em> in config.yaml
  2. Check NGSDB_SCHEMA_* environment variables`
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchURLError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid url %q: %w", fn.Name(), url, err),
	}
}

// EncodingError is returned for an unknown text encoding.
func EncodingError(encoding string, err error) error {
	msg := "Unknown text encoding '<em>%s</em>'"
	vars := []any{encoding}
	return &gn.Error{
		Code: errcode.FetchEncodingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown encoding %q: %w", encoding, err),
	}
}

// RequestError is returned when the request cannot be performed or its
// body cannot be read.
func RequestError(url string, err error) error {
	msg := `Cannot fetch <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - Remote host is down`
	vars := []any{url}
	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot fetch %s: %w", url, err),
	}
}

// StatusError is returned when the server does not answer with 200 OK.
func StatusError(url string, status int) error {
	msg := `Provided URL does not exist: <em>%s</em> (status %d)

<em>How to fix:</em>
  1. Check that the schema version exists as a tag
  2. Check the URL in a browser`
	vars := []any{url, status}
	return &gn.Error{
		Code: errcode.FetchStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("fetch %s: status %d", url, status),
	}
}
