package probe

import (
	"net/url"
	"regexp"
	"strings"
)

// linkMarkers are the href substrings that identify candidate sub-pages
// worth probing for category and contact signals.
var linkMarkers = []string{"about", "service", "product", "contact"}

var hrefRe = regexp.MustCompile(`(?is)<a[^>]+href\s*=\s*["']([^"']+)["']`)

// SubPageLinks returns up to limit same-host links from the page whose
// href contains one of the marker substrings. Relative hrefs are resolved
// against the base URL; duplicates are dropped in document order.
func SubPageLinks(baseURL, html string, limit int) []string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, m := range hrefRe.FindAllStringSubmatch(html, -1) {
		href := m[1]
		if !containsMarker(href) {
			continue
		}
		ref, refErr := url.Parse(href)
		if refErr != nil {
			continue
		}
		full := base.ResolveReference(ref)
		if full.Host != base.Host {
			continue
		}
		abs := full.String()
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func containsMarker(href string) bool {
	lower := strings.ToLower(href)
	for _, marker := range linkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
