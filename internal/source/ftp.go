package source

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

// FTPReader downloads the lead CSV from an ftp:// URL with anonymous login.
type FTPReader struct {
	url     string
	timeout time.Duration
}

// NewFTPReader creates a reader over an ftp:// CSV URL.
func NewFTPReader(url string, opts Options) *FTPReader {
	opts = opts.withDefaults()
	return &FTPReader{url: url, timeout: opts.Timeout}
}

// parseFTPURL extracts host (with port) and path from an FTP URL.
func parseFTPURL(rawURL string) (host string, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", eris.Wrap(err, "source: parse ftp url")
	}
	if u.Scheme != "ftp" {
		return "", "", eris.Errorf("source: expected ftp scheme, got %q", u.Scheme)
	}

	host = u.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host = net.JoinHostPort(host, "21")
	}

	path = u.Path
	if path == "" {
		return "", "", eris.New("source: empty path in ftp url")
	}

	return host, path, nil
}

// Read connects, retrieves the file, and parses it. Any failure is a
// *FetchError, fatal to the run.
func (f *FTPReader) Read(ctx context.Context) (*model.LeadSet, error) {
	host, path, err := parseFTPURL(f.url)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("source: ftp connecting", zap.String("host", host), zap.String("path", path))

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(f.timeout), ftp.DialWithContext(ctx))
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: eris.Wrap(err, "ftp dial")}
	}
	defer func() { _ = conn.Quit() }()

	if err := conn.Login("anonymous", "anonymous@"); err != nil {
		return nil, &FetchError{URL: f.url, Err: eris.Wrap(err, "ftp login")}
	}

	resp, err := conn.Retr(path)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: eris.Wrap(err, "ftp retrieve")}
	}
	defer func() { _ = resp.Close() }()

	return ParseLeads(resp)
}
