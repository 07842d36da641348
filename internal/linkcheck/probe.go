package linkcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const probeUserAgent = "DevToolboxLinkChecker/1.0"

// Prober issues HEAD/GET requests against a base URL to resolve the status
// of internal paths.
type Prober struct {
	base   *url.URL
	client *http.Client
}

// NewProber creates a prober for the given base URL. Redirects are not
// followed; a 3xx with its Location header is itself a finding.
func NewProber(baseURL string, timeout time.Duration) (*Prober, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %s", baseURL)
	}

	return &Prober{
		base: base,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Probe resolves one path. It tries HEAD first and falls back to GET when
// the server rejects the method. The returned detail is the Location header
// for redirects, or the transport error message when status is 0.
func (p *Prober) Probe(ctx context.Context, path string) (status int, detail string) {
	target := *p.base
	target.Path = path

	lastError := ""
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
		if err != nil {
			lastError = err.Error()
			continue
		}
		req.Header.Set("User-Agent", probeUserAgent)

		resp, err := p.client.Do(req)
		if err != nil {
			lastError = err.Error()
			continue
		}
		location := resp.Header.Get("Location")
		resp.Body.Close()

		if method == http.MethodHead && (resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented) {
			continue
		}
		return resp.StatusCode, location
	}

	return 0, lastError
}
