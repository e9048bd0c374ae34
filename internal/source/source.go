// Package source reads lead documents from HTTP, FTP, and local CSV/XLSX
// locations into ordered lead sets.
package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Reader loads the full lead set from a source document. A failure here is
// fatal to the run: there is no per-row recovery at this stage.
type Reader interface {
	Read(ctx context.Context) (*model.LeadSet, error)
}

// Options configures source readers.
type Options struct {
	Timeout time.Duration // default 15s
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = 15 * time.Second
	}
	return o
}

// New picks a Reader for the given location: http(s):// and ftp:// URLs
// are fetched remotely, anything else is treated as a local .csv or .xlsx
// path.
func New(location string, opts Options) (Reader, error) {
	if location == "" {
		return nil, eris.New("source: empty location")
	}

	u, err := url.Parse(location)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return NewHTTPReader(location, opts), nil
		case "ftp":
			return NewFTPReader(location, opts), nil
		}
	}

	if strings.HasSuffix(strings.ToLower(location), ".xlsx") {
		return NewXLSXReader(location), nil
	}
	return NewFileReader(location), nil
}

// FetchError reports a failed lead-source fetch. The run aborts on it.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source: fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("source: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
