package info

import (
	"fmt"
	"sort"
	"strings"
)

// Output formats understood by the Formatter
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formatter renders help content for a terminal or a markdown consumer
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatFeature renders a feature heading, its description and topic list
func (f *Formatter) FormatFeature(feature *Feature, format string) string {
	var b strings.Builder
	if strings.ToLower(format) == FormatMarkdown {
		fmt.Fprintf(&b, "## %s\n\n%s\n", feature.Title, strings.TrimSpace(feature.Description))
		for _, name := range topicNames(feature) {
			fmt.Fprintf(&b, "\n- **%s**: %s", feature.Topics[name].Title, name)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "%s\n%s", strings.ToUpper(feature.Title), strings.TrimSpace(feature.Description))
	if names := topicNames(feature); len(names) > 0 {
		fmt.Fprintf(&b, "\nTopics: %s", strings.Join(names, ", "))
	}
	return b.String()
}

// FormatTopic renders a single topic, including its key bindings
func (f *Formatter) FormatTopic(topic *Topic, format string) string {
	desc := strings.TrimSpace(topic.Description)
	if strings.ToLower(format) == FormatMarkdown {
		out := fmt.Sprintf("### %s\n\n%s", topic.Title, desc)
		for _, k := range topic.Keys {
			out += fmt.Sprintf("\n- `%s`", k)
		}
		return out
	}

	out := fmt.Sprintf("%s: %s", topic.Title, desc)
	if len(topic.Keys) > 0 {
		out += " [" + strings.Join(topic.Keys, ", ") + "]"
	}
	return out
}

// FormatChangelog renders release notes as plain lines
func (f *Formatter) FormatChangelog(entries []ChangelogEntry) []string {
	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %s", e.Date, e.Title))
		for _, item := range e.Items {
			lines = append(lines, "  - "+item)
		}
	}
	return lines
}

func topicNames(feature *Feature) []string {
	names := make([]string, 0, len(feature.Topics))
	for name := range feature.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
