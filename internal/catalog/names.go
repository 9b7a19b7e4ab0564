package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// FormatMaterialName turns an id such as "metal_parts" into "Metal Parts".
// It is the fallback label for records without a display name.
func FormatMaterialName(id string) string {
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// sortByDisplayName orders items by display name (id when unnamed) using
// English collation, with the id as a final tie-breaker.
func sortByDisplayName(items []domain.Item) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if c := col.CompareString(items[i].DisplayName(), items[j].DisplayName()); c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
}
