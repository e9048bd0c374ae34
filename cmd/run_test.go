package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/outreach-cli/internal/model"
)

type staticReader struct {
	set *model.LeadSet
}

func (s *staticReader) Read(_ context.Context) (*model.LeadSet, error) {
	return s.set, nil
}

func TestLimitedReader(t *testing.T) {
	set := &model.LeadSet{
		Header: []string{"Company", "Website"},
		Leads: []model.Lead{
			{Company: "A"}, {Company: "B"}, {Company: "C"},
		},
	}

	lr := &limitedReader{inner: &staticReader{set: set}, limit: 2}
	got, err := lr.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Leads, 2)
	assert.Equal(t, "A", got.Leads[0].Company)
}

func TestLimitedReader_LimitLargerThanSet(t *testing.T) {
	set := &model.LeadSet{Leads: []model.Lead{{Company: "A"}}}
	lr := &limitedReader{inner: &staticReader{set: set}, limit: 10}
	got, err := lr.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Leads, 1)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, 201, map[string]string{"status": "ok"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
