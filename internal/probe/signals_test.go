package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone_DashVariants(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"ascii hyphen", "(415) 555-1234"},
		{"hyphen u2010", "(415) 555‐1234"},
		{"non-breaking hyphen u2011", "(415) 555‑1234"},
		{"en dash u2013", "(415) 555–1234"},
		{"em dash u2014", "(415) 555—1234"},
		{"spaces only", "415 555 1234"},
		{"no parens", "415-555-1234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "(415) 555-1234", NormalizePhone(tc.raw))
		})
	}
}

func TestNormalizePhone_NoMatch(t *testing.T) {
	assert.Equal(t, "", NormalizePhone(""))
	assert.Equal(t, "", NormalizePhone("call us today"))
	assert.Equal(t, "", NormalizePhone("12-34"))
}

func TestFindPhone(t *testing.T) {
	text := "visit our store. call (209) 555–0188 for wholesale pricing."
	assert.Equal(t, "(209) 555-0188", FindPhone(text))
}

func TestFindPhone_NoMatch(t *testing.T) {
	assert.Equal(t, "", FindPhone("no contact information on this page"))
}

func TestFindEmail(t *testing.T) {
	assert.Equal(t, "sales@acme-foods.com", FindEmail("reach us at sales@acme-foods.com today"))
	assert.Equal(t, "", FindEmail("no email listed"))
}

func TestGuessLocation(t *testing.T) {
	assert.Equal(t, "fresno, ca", GuessLocation("warehouse located in fresno, ca since 1984"))
	assert.Equal(t, "", GuessLocation("nationwide shipping available"))
}
