package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/tier"
)

// Finding is a data-authoring problem. Findings never change how costs are
// computed; they only make silent zero-cost fallbacks visible.
type Finding struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	Detail   string `json:"detail"`
}

// Audit inspects a built catalog (and optionally the report of the load that
// produced it) for tier gaps, missing costs and dangling material references.
func Audit(c *Catalog, report *LoadReport) []Finding {
	var findings []Finding

	if report != nil {
		for _, s := range report.Skipped {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Kind:     FindingInvalidFile,
				ItemID:   s.Path,
				Detail:   s.Reason,
			})
		}
	}

	findings = append(findings, auditTiers(c)...)
	findings = append(findings, auditMaterialRefs(c)...)

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].ItemID != findings[j].ItemID {
			return findings[i].ItemID < findings[j].ItemID
		}
		return findings[i].Kind < findings[j].Kind
	})
	return findings
}

// HasErrors reports whether any finding is error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func auditTiers(c *Catalog) []Finding {
	var findings []Finding
	idx := c.Index()

	// highest level seen per family, only for families that have a tier >= 2
	maxLevel := make(map[string]int)
	for _, id := range idx.IDs() {
		family, level := tier.Decompose(id)

		if suffix, ok := tier.Suffix(id); ok && level == 1 && tier.LooksLikeNumeral(suffix) && !strings.EqualFold(suffix, "i") {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Kind:     FindingUnsupportedTier,
				ItemID:   id,
				Detail:   fmt.Sprintf("suffix %q is not a supported tier (max %d); priced as tier 1", suffix, tier.MaxLevel),
			})
		}

		if level >= 2 && level > maxLevel[family] {
			maxLevel[family] = level
		}
	}

	families := make([]string, 0, len(maxLevel))
	for family := range maxLevel {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		baseID, _ := tier.Compose(family, 1)
		base, ok := idx.Get(baseID)
		switch {
		case !ok:
			findings = append(findings, Finding{
				Severity: SeverityError,
				Kind:     FindingMissingBase,
				ItemID:   baseID,
				Detail:   fmt.Sprintf("family %q has higher tiers but no tier I record", family),
			})
		case !base.HasRecipe():
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Kind:     FindingMissingBaseRecipe,
				ItemID:   baseID,
				Detail:   "tier I record has no recipe; base cost counts as zero",
			})
		}

		for level := 2; level <= maxLevel[family]; level++ {
			id, _ := tier.Compose(family, level)
			item, ok := idx.Get(id)
			if !ok {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Kind:     FindingTierGap,
					ItemID:   id,
					Detail:   fmt.Sprintf("missing tier %d of %q; its upgrade cost counts as zero", level, family),
				})
				continue
			}
			if len(item.UpgradeCost) == 0 {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Kind:     FindingMissingUpgradeCost,
					ItemID:   id,
					Detail:   "record has no upgrade cost; this step counts as zero",
				})
			}
		}
	}

	return findings
}

func auditMaterialRefs(c *Catalog) []Finding {
	var findings []Finding
	idx := c.Index()

	for _, id := range idx.IDs() {
		item, _ := idx.Get(id)
		seen := make(map[string]bool)
		for _, m := range []domain.Materials{item.Recipe, item.UpgradeCost} {
			for materialID := range m {
				if seen[materialID] {
					continue
				}
				seen[materialID] = true
				if _, ok := idx.Get(materialID); !ok {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						Kind:     FindingUnknownMaterial,
						ItemID:   id,
						Detail:   fmt.Sprintf(ErrFmtUnknownMaterialRef, id, materialID),
					})
				}
			}
		}
	}

	// map iteration above is unordered; keep per-item output stable
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].ItemID != findings[j].ItemID {
			return findings[i].ItemID < findings[j].ItemID
		}
		return findings[i].Detail < findings[j].Detail
	})
	return findings
}
