package info

// Topic is one help entry within a feature
type Topic struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keys        []string `yaml:"keys,omitempty" json:"keys,omitempty"`
}

// Feature groups related help topics
type Feature struct {
	Name        string           `yaml:"name" json:"name"`
	Title       string           `yaml:"title" json:"title"`
	Description string           `yaml:"description" json:"description"`
	Order       int              `yaml:"order,omitempty" json:"order,omitempty"`
	Topics      map[string]Topic `yaml:"topics,omitempty" json:"topics,omitempty"`
}

// ChangelogEntry is one dated release note
type ChangelogEntry struct {
	Date  string   `yaml:"date" json:"date"`
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}
