package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// decodeRecord turns one item file into a domain.Item. Only a missing id or a
// non-object document is fatal; every other field is decoded on its own and
// dropped when malformed.
func decodeRecord(data []byte) (domain.Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Item{}, fmt.Errorf(ErrMsgParseFileFailed, err)
	}
	if fields == nil {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrInvalidItemRecord, ErrMsgNotAnObject)
	}

	var item domain.Item
	if !decodeField(fields["id"], &item.ID) || strings.TrimSpace(item.ID) == "" {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrInvalidItemRecord, ErrMsgMissingID)
	}

	item.Name = decodeName(fields["name"])
	decodeField(fields["imageFilename"], &item.ImageFilename)
	decodeField(fields["type"], &item.Type)
	decodeField(fields["isWeapon"], &item.IsWeapon)
	decodeField(fields["craftQuantity"], &item.BundleQuantity)
	decodeField(fields["stackSize"], &item.StackSize)

	item.Recipe = decodeMaterials(fields["recipe"])
	item.UpgradeCost = decodeMaterials(fields["upgradeCost"])
	item.RecyclesInto = decodeMaterials(fields["recyclesInto"])

	if item.BundleQuantity < 0 {
		item.BundleQuantity = 0
	}

	return item, nil
}

func decodeField(raw json.RawMessage, dst any) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// decodeName accepts either a plain string or a localized {"en": "..."} object.
func decodeName(raw json.RawMessage) string {
	var plain string
	if decodeField(raw, &plain) {
		return plain
	}
	var localized struct {
		EN string `json:"en"`
	}
	if decodeField(raw, &localized) {
		return localized.EN
	}
	return ""
}

// decodeMaterials parses a material map. Any entry that is not a non-negative
// whole number makes the whole map absent, matching how a missing map is
// priced.
func decodeMaterials(raw json.RawMessage) domain.Materials {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var values map[string]float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	out := make(domain.Materials, len(values))
	for id, qty := range values {
		if id == "" || qty < 0 || qty != math.Trunc(qty) || qty > math.MaxInt32 {
			return nil
		}
		if qty == 0 {
			continue
		}
		out[id] = int(qty)
	}
	return out
}
