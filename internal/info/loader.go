package info

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const yamlExt = ".yaml"

// Loader handles loading and caching help features from YAML files
type Loader struct {
	dir     string
	cache   map[string]*Feature
	cacheMu sync.RWMutex
	loaded  bool
}

// NewLoader creates a new info loader
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Feature),
	}
}

// Load reads all YAML feature files from the directory, replacing anything
// cached before
func (l *Loader) Load() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("failed to read info directory: %w", err)
	}

	cache := make(map[string]*Feature, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), yamlExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), yamlExt)
		feature, err := loadFeatureFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to load feature %s: %w", name, err)
		}
		if feature.Name == "" {
			feature.Name = name
		}
		cache[name] = feature
	}

	l.cacheMu.Lock()
	l.cache = cache
	l.loaded = true
	l.cacheMu.Unlock()
	return nil
}

func loadFeatureFile(path string) (*Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var feature Feature
	if err := yaml.Unmarshal(data, &feature); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &feature, nil
}

// ensureLoaded lazily loads on first access. A failed load leaves the cache
// empty and is retried on the next call.
func (l *Loader) ensureLoaded() {
	l.cacheMu.RLock()
	loaded := l.loaded
	l.cacheMu.RUnlock()
	if !loaded {
		_ = l.Load()
	}
}

// GetFeature returns a feature by name
func (l *Loader) GetFeature(name string) (*Feature, bool) {
	l.ensureLoaded()

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	feature, ok := l.cache[strings.ToLower(name)]
	return feature, ok
}

// GetTopic returns a specific topic within a feature
func (l *Loader) GetTopic(featureName, topicName string) (*Topic, bool) {
	feature, ok := l.GetFeature(featureName)
	if !ok {
		return nil, false
	}

	topic, ok := feature.Topics[strings.ToLower(topicName)]
	if !ok {
		return nil, false
	}
	return &topic, true
}

// SearchTopic searches for a topic across all features by name.
// Returns the topic, the feature it belongs to, and whether it was found.
// Features are searched in name order so duplicates resolve the same way
// every time.
func (l *Loader) SearchTopic(topicName string) (*Topic, string, bool) {
	l.ensureLoaded()

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	names := make([]string, 0, len(l.cache))
	for name := range l.cache {
		names = append(names, name)
	}
	sort.Strings(names)

	key := strings.ToLower(topicName)
	for _, name := range names {
		if topic, ok := l.cache[name].Topics[key]; ok {
			return &topic, name, true
		}
	}
	return nil, "", false
}

// Features returns every loaded feature ordered by Order then name
func (l *Loader) Features() []*Feature {
	l.ensureLoaded()

	l.cacheMu.RLock()
	result := make([]*Feature, 0, len(l.cache))
	for _, f := range l.cache {
		result = append(result, f)
	}
	l.cacheMu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Name < result[j].Name
	})
	return result
}
