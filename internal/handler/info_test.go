package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/info"
)

func newTestInfoHandler(t *testing.T) *InfoHandler {
	t.Helper()
	loader := info.NewLoader("../../configs/info")
	require.NoError(t, loader.Load())
	changelog, err := info.LoadChangelog("../../configs/changelog.yaml")
	require.NoError(t, err)
	return NewInfoHandler(loader, changelog)
}

func TestInfoHandler_ListFeatures(t *testing.T) {
	h := newTestInfoHandler(t)
	w := httptest.NewRecorder()

	h.HandleListFeatures(w, httptest.NewRequest("GET", "/api/v1/info", nil))

	require.Equal(t, http.StatusOK, w.Code)
	features := decodeBody[[]FeatureSummary](t, w)
	require.Len(t, features, 2)
	assert.Equal(t, "costs", features[0].Name)
	assert.Contains(t, features[0].Topics, "tiers")
}

func TestInfoHandler_GetTopic(t *testing.T) {
	tests := []struct {
		name        string
		topic       string
		query       string
		wantStatus  int
		wantFeature string
		wantTopic   string
	}{
		{"feature", "costs", "", http.StatusOK, "costs", ""},
		{"topic within feature", "costs", "?sub=upgrade", http.StatusOK, "costs", "upgrade"},
		{"topic searched across features", "quantity", "", http.StatusOK, "planner", "quantity"},
		{"markdown format", "planner", "?format=markdown", http.StatusOK, "planner", ""},
		{"unknown sub topic", "costs", "?sub=nope", http.StatusNotFound, "", ""},
		{"unknown name", "nothing", "", http.StatusNotFound, "", ""},
		{"bad format", "costs", "?format=html", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestInfoHandler(t)
			req := withURLParams(httptest.NewRequest("GET", "/api/v1/info/"+tt.topic+tt.query, nil),
				map[string]string{"topic": tt.topic})
			w := httptest.NewRecorder()

			h.HandleGetTopic(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeBody[InfoResponse](t, w)
			assert.Equal(t, tt.wantFeature, resp.Feature)
			assert.Equal(t, tt.wantTopic, resp.Topic)
			assert.NotEmpty(t, resp.Description)
		})
	}
}

func TestInfoHandler_Changelog(t *testing.T) {
	h := newTestInfoHandler(t)
	w := httptest.NewRecorder()

	h.HandleChangelog(w, httptest.NewRequest("GET", "/api/v1/changelog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ChangelogResponse](t, w)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "2026-01-03", resp.Entries[0].Date)

	empty := NewInfoHandler(info.NewLoader(t.TempDir()), nil)
	w = httptest.NewRecorder()
	empty.HandleChangelog(w, httptest.NewRequest("GET", "/api/v1/changelog", nil))
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}
