package info

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const changelogDateLayout = "2006-01-02"

// LoadChangelog reads release notes from a YAML list and returns them newest
// first. Every entry must carry a YYYY-MM-DD date.
func LoadChangelog(path string) ([]ChangelogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog: %w", err)
	}
	return ParseChangelog(data)
}

// ParseChangelog decodes and orders changelog YAML
func ParseChangelog(data []byte) ([]ChangelogEntry, error) {
	var entries []ChangelogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse changelog YAML: %w", err)
	}

	dates := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		d, err := time.Parse(changelogDateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("changelog entry %q has invalid date %q: %w", e.Title, e.Date, err)
		}
		dates[e.Date] = d
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return dates[entries[i].Date].After(dates[entries[j].Date])
	})
	return entries, nil
}
