// Package probe fetches a lead's website and extracts the signals used to
// seed profile generation: a short description, category keywords, and a
// phone number.
package probe

import (
	"context"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Prober extracts signals from a lead's website. Implementations never
// return an error: every failure path degrades to a ProbeResult with the
// Error field set.
type Prober interface {
	Probe(ctx context.Context, websiteURL string) model.ProbeResult
}

// Options configures the HTTP prober.
type Options struct {
	UserAgent   string
	Timeout     time.Duration // per-request; default 12s
	MaxSubPages int           // default 2
	MinDelay    time.Duration // politeness delay between requests; default 1s
	MaxDelay    time.Duration // default 2s
	Keywords    []string      // default DefaultVocabulary
	// RequestsPerSec caps the overall probe fetch rate. Default 5.
	RequestsPerSec float64
}

// HTTPProber probes websites over plain HTTP.
type HTTPProber struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
}

// NewHTTPProber creates an HTTPProber with the given options.
func NewHTTPProber(opts Options) *HTTPProber {
	if opts.Timeout == 0 {
		opts.Timeout = 12 * time.Second
	}
	if opts.MaxSubPages == 0 {
		opts.MaxSubPages = 2
	}
	if opts.MinDelay == 0 && opts.MaxDelay == 0 {
		opts.MinDelay = 1 * time.Second
		opts.MaxDelay = 2 * time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}
	if len(opts.Keywords) == 0 {
		opts.Keywords = DefaultVocabulary()
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 5
	}
	return &HTTPProber{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
	}
}

// Probe fetches the homepage plus up to MaxSubPages same-host pages and
// extracts brief, keywords, phone, and the extended signals. A homepage
// failure yields a result with Error set and everything else empty;
// sub-page failures are skipped silently.
func (p *HTTPProber) Probe(ctx context.Context, websiteURL string) model.ProbeResult {
	var out model.ProbeResult

	home, err := p.fetch(ctx, websiteURL)
	if err != nil {
		out.Error = "homepage_error: " + err.Error()
		return out
	}

	brief := MetaDescription(home)
	if brief == "" {
		brief = FirstParagraph(home, 250)
	}
	if brief == "" {
		brief = PlaceholderBrief
	}

	buffer := VisibleText(home)

	for _, link := range SubPageLinks(websiteURL, home, p.opts.MaxSubPages) {
		p.politeSleep(ctx)
		sub, subErr := p.fetch(ctx, link)
		if subErr != nil {
			zap.L().Debug("probe: sub-page fetch failed, skipping",
				zap.String("url", link),
				zap.Error(subErr),
			)
			continue
		}
		buffer += " " + VisibleText(sub)
	}

	out.Brief = brief
	out.Keywords = MatchKeywords(buffer, p.opts.Keywords)
	out.Phone = FindPhone(buffer)
	out.EmailFound = FindEmail(buffer)
	out.LocationGuess = GuessLocation(buffer)
	return out
}

// fetch performs a single GET with the probe's user agent and timeout and
// returns the body capped at 512 KiB.
func (p *HTTPProber) fetch(ctx context.Context, rawURL string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "probe: rate limiter wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "probe: create request")
	}
	req.Header.Set("User-Agent", p.opts.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "probe: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", eris.Errorf("probe: status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", eris.Wrap(err, "probe: read body")
	}

	return string(body), nil
}

// politeSleep pauses a uniform random interval in [MinDelay, MaxDelay] so
// consecutive requests do not hammer the target server.
func (p *HTTPProber) politeSleep(ctx context.Context) {
	d := p.opts.MinDelay
	if span := p.opts.MaxDelay - p.opts.MinDelay; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// PlaceholderBrief is used when neither a meta description nor a first
// paragraph is available.
const PlaceholderBrief = "No meta description available."

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
