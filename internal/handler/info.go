package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LoadoutCalc_Go/internal/info"
)

// InfoResponse represents the structure for info responses
type InfoResponse struct {
	Format      string `json:"format"`
	Feature     string `json:"feature,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description"`
}

// FeatureSummary is one entry of the help index
type FeatureSummary struct {
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// ChangelogResponse lists release notes newest first
type ChangelogResponse struct {
	Entries []info.ChangelogEntry `json:"entries"`
}

// InfoHandler serves help topics and the changelog
type InfoHandler struct {
	loader    *info.Loader
	changelog []info.ChangelogEntry
	formatter *info.Formatter
}

// NewInfoHandler creates a new info handler. changelog is expected newest first.
func NewInfoHandler(loader *info.Loader, changelog []info.ChangelogEntry) *InfoHandler {
	return &InfoHandler{
		loader:    loader,
		changelog: changelog,
		formatter: info.NewFormatter(),
	}
}

// HandleListFeatures returns the help index
// @Summary Help index
// @Tags info
// @Produce json
// @Success 200 {array} FeatureSummary
// @Router /api/v1/info [get]
func (h *InfoHandler) HandleListFeatures(w http.ResponseWriter, r *http.Request) {
	features := h.loader.Features()
	out := make([]FeatureSummary, 0, len(features))
	for _, f := range features {
		topics := make([]string, 0, len(f.Topics))
		for name := range f.Topics {
			topics = append(topics, name)
		}
		sort.Strings(topics)
		out = append(out, FeatureSummary{Name: f.Name, Title: f.Title, Topics: topics})
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleGetTopic renders a feature, or a topic found in any feature
// @Summary Help topic
// @Tags info
// @Produce json
// @Param topic path string true "Feature or topic name"
// @Param sub query string false "Topic within the feature"
// @Param format query string false "text (default) or markdown"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/info/{topic} [get]
func (h *InfoHandler) HandleGetTopic(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(GetOptionalQueryParam(r, "format", info.FormatText))
	if format != info.FormatText && format != info.FormatMarkdown {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFormat, format))
		return
	}

	name := strings.ToLower(chi.URLParam(r, "topic"))
	sub := strings.ToLower(r.URL.Query().Get("sub"))
	response := InfoResponse{Format: format}

	if sub != "" {
		topic, ok := h.loader.GetTopic(name, sub)
		if !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgTopicNotFound, sub, name))
			return
		}
		response.Feature = name
		response.Topic = sub
		response.Description = h.formatter.FormatTopic(topic, format)
		respondJSON(w, http.StatusOK, response)
		return
	}

	if feature, ok := h.loader.GetFeature(name); ok {
		response.Feature = name
		response.Description = h.formatter.FormatFeature(feature, format)
		respondJSON(w, http.StatusOK, response)
		return
	}

	// Not a feature; try it as a topic in any feature
	topic, featureName, found := h.loader.SearchTopic(name)
	if !found {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgFeatureOrTopicAbsent, name))
		return
	}
	response.Feature = featureName
	response.Topic = name
	response.Description = h.formatter.FormatTopic(topic, format)
	respondJSON(w, http.StatusOK, response)
}

// HandleChangelog returns release notes
// @Summary Changelog
// @Tags info
// @Produce json
// @Success 200 {object} ChangelogResponse
// @Router /api/v1/changelog [get]
func (h *InfoHandler) HandleChangelog(w http.ResponseWriter, r *http.Request) {
	entries := h.changelog
	if entries == nil {
		entries = []info.ChangelogEntry{}
	}
	respondJSON(w, http.StatusOK, ChangelogResponse{Entries: entries})
}
