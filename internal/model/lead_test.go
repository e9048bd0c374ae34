package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadField(t *testing.T) {
	t.Parallel()

	lead := Lead{
		Company:      "Acme Snacks",
		Website:      "https://acme.example",
		ContactName:  "Jordan Lee",
		ContactEmail: "jordan@acme.example",
		Location:     "Stockton, CA",
		Extra:        map[string]string{"Notes": "met at expo"},
	}

	t.Run("canonical columns", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Acme Snacks", lead.Field(ColCompany))
		assert.Equal(t, "https://acme.example", lead.Field(ColWebsite))
		assert.Equal(t, "Jordan Lee", lead.Field(ColContactName))
		assert.Equal(t, "jordan@acme.example", lead.Field(ColContactEmail))
		assert.Equal(t, "Stockton, CA", lead.Field(ColLocation))
	})

	t.Run("extra column", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "met at expo", lead.Field("Notes"))
	})

	t.Run("unknown column is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lead.Field("Revenue"))
	})

	t.Run("nil extra map", func(t *testing.T) {
		t.Parallel()
		bare := Lead{Company: "Solo"}
		assert.Empty(t, bare.Field("Notes"))
	})
}

func TestProbeResultKeywordList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "grocery, organic, wholesale",
		ProbeResult{Keywords: []string{"grocery", "organic", "wholesale"}}.KeywordList())
	assert.Empty(t, ProbeResult{}.KeywordList())
}
