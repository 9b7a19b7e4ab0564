// Package cost prices individual catalog records. Tiered families are walked
// from the base recipe through each upgrade step; everything absent from the
// catalog contributes nothing.
package cost

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
	"github.com/osse101/LoadoutCalc_Go/internal/tier"
)

// Lookup resolves a record by id. catalog.Index and *catalog.Catalog satisfy it.
type Lookup interface {
	Get(id string) (domain.Item, bool)
}

// Calculator computes per-unit material costs against one catalog snapshot.
// Results are memoized; callers always receive their own copy.
type Calculator struct {
	items Lookup
	cache *lru.Cache[string, domain.Materials]
}

// NewCalculator returns a calculator over items with a memo of cacheSize
// entries. A non-positive size disables memoization.
func NewCalculator(items Lookup, cacheSize int) *Calculator {
	c := &Calculator{items: items}
	if cacheSize <= 0 {
		slog.Debug(LogMsgCacheDisabled, "size", cacheSize)
		return c
	}
	cache, err := lru.New[string, domain.Materials](cacheSize)
	if err != nil {
		slog.Warn(LogMsgCacheDisabled, "size", cacheSize, "error", err)
		return c
	}
	c.cache = cache
	return c
}

// FullCraftCost is the base recipe of the family plus every upgrade step up
// to the requested tier. A level-1 id, tiered or not, costs its own recipe.
func (c *Calculator) FullCraftCost(id string) domain.Materials {
	return c.memo(ModeTotal, id, c.fullCraftCost)
}

// UpgradeCost is the cost of the requested tier alone: its upgrade step, or
// its recipe when it is the first tier.
func (c *Calculator) UpgradeCost(id string) domain.Materials {
	return c.memo(ModeUpgrade, id, c.upgradeCost)
}

// Cost prices one unit of id under mode. Unknown modes fall back to total.
func (c *Calculator) Cost(id string, mode Mode) domain.Materials {
	if mode == ModeUpgrade {
		return c.UpgradeCost(id)
	}
	return c.FullCraftCost(id)
}

func (c *Calculator) memo(mode Mode, id string, compute func(string) domain.Materials) domain.Materials {
	if c.cache == nil {
		return compute(id)
	}

	key := string(mode) + cacheKeySeparator + id
	if cached, ok := c.cache.Get(key); ok {
		metrics.CostCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return cached.Clone()
	}
	metrics.CostCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	computed := compute(id)
	c.cache.Add(key, computed)
	return computed.Clone()
}

func (c *Calculator) fullCraftCost(id string) domain.Materials {
	family, level := tier.Decompose(id)
	out := make(domain.Materials)

	baseID := id
	if level > 1 {
		baseID, _ = tier.Compose(family, 1)
	}
	if base, ok := c.items.Get(baseID); ok {
		out.Add(base.Recipe)
	}

	for l := 2; l <= level; l++ {
		stepID, ok := tier.Compose(family, l)
		if !ok {
			break
		}
		if step, found := c.items.Get(stepID); found {
			out.Add(step.UpgradeCost)
		}
	}
	return out
}

func (c *Calculator) upgradeCost(id string) domain.Materials {
	_, level := tier.Decompose(id)
	out := make(domain.Materials)

	item, ok := c.items.Get(id)
	if !ok {
		return out
	}
	if level == 1 {
		out.Add(item.Recipe)
	} else {
		out.Add(item.UpgradeCost)
	}
	return out
}
