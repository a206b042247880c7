// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers shared by the search backends.
package httputil

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/pdiddy/student-guidance/pkg/types"
)

// acceptEncoding is sent on every request. Setting it explicitly turns off
// the transport's transparent gzip handling, so decodeBody covers both.
const acceptEncoding = "br, gzip"

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s returned HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

// NewClient returns an http.Client configured from cfg. A zero Timeout
// leaves requests unbounded; callers cancel through the request context.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// GetJSON issues one GET to rawURL and decodes the JSON response into out.
// The body is decompressed according to Content-Encoding. There is no retry:
// a transport error, non-2xx status, or decode failure is returned as is.
func GetJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       bodySnippet(resp),
		}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return err
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decoding JSON from %s: %w", rawURL, err)
	}
	return nil
}

// bodySnippet returns up to 512 bytes of the decoded body. Decoding is best
// effort: an undecodable body yields an empty snippet.
func bodySnippet(resp *http.Response) string {
	body, err := decodeBody(resp)
	if err != nil {
		return ""
	}
	snippet, _ := io.ReadAll(io.LimitReader(body, 512))
	return strings.TrimSpace(string(snippet))
}

// decodeBody wraps resp.Body in a decompressor matching Content-Encoding.
func decodeBody(resp *http.Response) (io.Reader, error) {
	enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	switch enc {
	case "", "identity":
		return resp.Body, nil
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("opening gzip body: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("unsupported Content-Encoding %q", enc)
	}
}
