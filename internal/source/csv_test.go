package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/outreach-cli/internal/model"
)

func TestParseLeads(t *testing.T) {
	doc := strings.NewReader(`Company,Website,ContactName,ContactEmail,Location
Acme Snacks,http://acme.example,Jo Lee,jo@acme.example,"Fresno, CA"
Best Foods,http://best.example,,,
`)
	set, err := ParseLeads(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"Company", "Website", "ContactName", "ContactEmail", "Location"}, set.Header)
	require.Len(t, set.Leads, 2)

	assert.Equal(t, model.Lead{
		Company:      "Acme Snacks",
		Website:      "http://acme.example",
		ContactName:  "Jo Lee",
		ContactEmail: "jo@acme.example",
		Location:     "Fresno, CA",
	}, set.Leads[0])

	assert.Equal(t, "Best Foods", set.Leads[1].Company)
	assert.Empty(t, set.Leads[1].ContactName)
}

func TestParseLeads_BOMAndExtraColumns(t *testing.T) {
	doc := strings.NewReader("\ufeffCompany,Website,Segment\nAcme,http://acme.example,Retail\n")
	set, err := ParseLeads(doc)
	require.NoError(t, err)

	assert.Equal(t, "Company", set.Header[0])
	require.Len(t, set.Leads, 1)
	assert.Equal(t, "Retail", set.Leads[0].Extra["Segment"])
	assert.Equal(t, "Retail", set.Leads[0].Field("Segment"))
}

func TestParseLeads_MissingRequiredColumn(t *testing.T) {
	_, err := ParseLeads(strings.NewReader("Company,ContactName\nAcme,Jo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Website")
}

func TestParseLeads_EmptyDocument(t *testing.T) {
	_, err := ParseLeads(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseLeads_ShortRow(t *testing.T) {
	set, err := ParseLeads(strings.NewReader("Company,Website,Location\nAcme,http://acme.example\n"))
	require.NoError(t, err)
	require.Len(t, set.Leads, 1)
	assert.Empty(t, set.Leads[0].Location)
}
