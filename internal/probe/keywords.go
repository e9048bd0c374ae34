package probe

import (
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultVocabulary returns the fixed category terms matched against page
// text. Copy on return keeps callers from mutating the shared list.
func DefaultVocabulary() []string {
	return []string{
		"convenience", "organic", "ethnic", "asian", "hispanic", "natural",
		"halal", "wholesale", "foodservice", "supermarket", "c-store",
		"grocery", "distribution",
	}
}

// vocabularyFile is the on-disk shape of a keyword override file.
type vocabularyFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadVocabulary reads a YAML keyword override file. An empty path returns
// the default vocabulary.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "probe: read keywords file")
	}

	var vf vocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, eris.Wrap(err, "probe: parse keywords file")
	}
	if len(vf.Keywords) == 0 {
		return nil, eris.Errorf("probe: keywords file %s defines no keywords", path)
	}

	return vf.Keywords, nil
}

// MatchKeywords returns the subset of vocab present in text as substrings,
// deduplicated and sorted. Matching the same buffer twice always yields
// the same set.
func MatchKeywords(text string, vocab []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, kw := range vocab {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		if strings.Contains(text, kw) {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}
