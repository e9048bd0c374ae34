package probe

import (
	"regexp"
	"strings"
)

var (
	metaTagRe     = regexp.MustCompile(`(?is)<meta[^>]*>`)
	metaNameRe    = regexp.MustCompile(`(?i)name\s*=\s*["']description["']`)
	metaContentRe = regexp.MustCompile(`(?i)content\s*=\s*["']([^"']*)["']`)
	paragraphRe   = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
)

// MetaDescription returns the trimmed content of the page's
// meta-description tag, or "" when absent.
func MetaDescription(html string) string {
	for _, tag := range metaTagRe.FindAllString(html, -1) {
		if !metaNameRe.MatchString(tag) {
			continue
		}
		if m := metaContentRe.FindStringSubmatch(tag); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// FirstParagraph returns the text of the first <p> element truncated to
// maxChars runes, or "" when the page has no paragraph text.
func FirstParagraph(html string, maxChars int) string {
	m := paragraphRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	text := normalizeSpace(decodeEntities(tagRe.ReplaceAllString(m[1], " ")))
	runes := []rune(text)
	if len(runes) > maxChars {
		text = string(runes[:maxChars])
	}
	return strings.TrimSpace(text)
}

// VisibleText strips markup and returns the page's visible text,
// whitespace-normalized and lowercased, for keyword and pattern scans.
func VisibleText(html string) string {
	// Drop script and style blocks entirely; their content is never visible.
	for _, tag := range []string{"script", "style"} {
		re := regexp.MustCompile(`(?is)<` + tag + `[^>]*>.*?</` + tag + `>`)
		html = re.ReplaceAllString(html, " ")
	}

	html = tagRe.ReplaceAllString(html, " ")
	html = decodeEntities(html)

	return strings.ToLower(normalizeSpace(html))
}

// decodeEntities replaces the handful of HTML entities that matter for
// text scans.
func decodeEntities(s string) string {
	r := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return r.Replace(s)
}
