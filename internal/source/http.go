package source

import (
	"context"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

// HTTPReader fetches the lead CSV from a published URL. No retry: the
// sheet export either answers or the run aborts.
type HTTPReader struct {
	url    string
	client *http.Client
}

// NewHTTPReader creates a reader over an http(s) CSV export URL.
func NewHTTPReader(url string, opts Options) *HTTPReader {
	opts = opts.withDefaults()
	return &HTTPReader{
		url: url,
		client: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// Read downloads and parses the document. Non-2xx responses and transport
// errors surface as a *FetchError.
func (h *HTTPReader) Read(ctx context.Context) (*model.LeadSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "source: create request")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: h.url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: h.url, StatusCode: resp.StatusCode}
	}

	set, err := ParseLeads(resp.Body)
	if err != nil {
		return nil, err
	}

	zap.L().Info("source: leads downloaded",
		zap.String("url", h.url),
		zap.Int("rows", len(set.Leads)),
	)
	return set, nil
}
