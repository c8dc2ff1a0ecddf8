package mappers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/pricing"
)

var (
	ErrMalformedVariants    = errors.New("malformed variants payload")
	ErrMalformedVariant     = errors.New("malformed offer variant payload")
	ErrMalformedChargeRules = errors.New("malformed charge rules payload")
)

// normalizePayload trims a stored JSON value and unwraps one level of
// string encoding. It returns nil for empty, null and "" values.
func normalizePayload(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '"' {
		return raw
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return raw
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil
	}
	return []byte(s)
}

type variantJSON struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

// ParseVariants decodes a menu item's variant list. Entries without a name
// or a price, duplicates and the reserved base label are dropped and reported through the returned error; the
// remaining variants are still returned.
func ParseVariants(raw []byte) ([]menu.Variant, error) {
	payload := normalizePayload(raw)
	if payload == nil {
		return nil, nil
	}

	var entries []variantJSON
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVariants, err)
	}

	variants := make([]menu.Variant, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	var dropped int
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || name == menu.ReservedVariantName || !e.Price.Valid || e.Price.Decimal.IsNegative() {
			dropped++
			continue
		}
		if _, dup := seen[name]; dup {
			dropped++
			continue
		}
		seen[name] = struct{}{}
		variants = append(variants, menu.Variant{Name: name, Price: e.Price.Decimal})
	}
	if dropped > 0 {
		return variants, fmt.Errorf("%w: %d invalid entries dropped", ErrMalformedVariants, dropped)
	}
	return variants, nil
}

// EncodeVariants is the inverse of ParseVariants.
func EncodeVariants(variants []menu.Variant) ([]byte, error) {
	if len(variants) == 0 {
		return nil, nil
	}
	entries := make([]variantJSON, 0, len(variants))
	for _, v := range variants {
		entries = append(entries, variantJSON{Name: v.Name, Price: decimal.NewNullDecimal(v.Price)})
	}
	return json.Marshal(entries)
}

// ParseOfferVariant decodes the variant an offer targets. A missing price
// is allowed; the resolver falls back to the catalog in that case.
func ParseOfferVariant(raw []byte) (*offer.VariantRef, error) {
	payload := normalizePayload(raw)
	if payload == nil {
		return nil, nil
	}

	var v variantJSON
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVariant, err)
	}
	name := strings.TrimSpace(v.Name)
	if name == "" {
		return nil, nil
	}
	if v.Price.Valid && v.Price.Decimal.IsNegative() {
		v.Price = decimal.NullDecimal{}
	}
	return &offer.VariantRef{Name: name, Price: v.Price}, nil
}

// EncodeOfferVariant is the inverse of ParseOfferVariant.
func EncodeOfferVariant(v *offer.VariantRef) ([]byte, error) {
	if v == nil || v.Name == "" {
		return nil, nil
	}
	return json.Marshal(variantJSON{Name: v.Name, Price: v.Price})
}

type bracketJSON struct {
	MinAmount decimal.Decimal     `json:"min_amount"`
	MaxAmount decimal.NullDecimal `json:"max_amount"`
	Charge    decimal.Decimal     `json:"charge"`
}

type chargeRulesJSON struct {
	ChargeMode string        `json:"charge_mode"`
	Brackets   []bracketJSON `json:"brackets"`
}

// ParseChargeRules decodes a QR group's surcharge configuration. Stored
// values come in three shapes: a bare number (or numeric string) holding a
// flat extra charge, an array of brackets, or {charge_mode, brackets}.
// On error the returned set is empty, never nil.
func ParseChargeRules(raw []byte) (*pricing.ChargeBracketSet, error) {
	payload := normalizePayload(raw)
	if payload == nil {
		return pricing.EmptyChargeBracketSet(), nil
	}

	set, err := parseChargeRules(payload)
	if err != nil {
		return pricing.EmptyChargeBracketSet(), fmt.Errorf("%w: %v", ErrMalformedChargeRules, err)
	}
	return set, nil
}

func parseChargeRules(payload []byte) (*pricing.ChargeBracketSet, error) {
	switch payload[0] {
	case '[':
		var brackets []bracketJSON
		if err := json.Unmarshal(payload, &brackets); err != nil {
			return nil, err
		}
		return buildBracketSet(pricing.ChargeModeFlatFee, brackets)
	case '{':
		var rules chargeRulesJSON
		if err := json.Unmarshal(payload, &rules); err != nil {
			return nil, err
		}
		mode, err := pricing.ParseChargeMode(rules.ChargeMode)
		if err != nil {
			return nil, err
		}
		return buildBracketSet(mode, rules.Brackets)
	default:
		charge, err := decimal.NewFromString(string(payload))
		if err != nil {
			return nil, err
		}
		if charge.IsZero() {
			return pricing.EmptyChargeBracketSet(), nil
		}
		return pricing.LegacyFlatCharge(charge)
	}
}

func buildBracketSet(mode pricing.ChargeMode, raw []bracketJSON) (*pricing.ChargeBracketSet, error) {
	brackets := make([]pricing.ChargeBracket, 0, len(raw))
	for _, b := range raw {
		cb := pricing.ChargeBracket{MinAmount: b.MinAmount, Charge: b.Charge}
		if b.MaxAmount.Valid {
			upper := b.MaxAmount.Decimal
			cb.MaxAmount = &upper
		}
		brackets = append(brackets, cb)
	}
	sort.SliceStable(brackets, func(i, j int) bool {
		return brackets[i].MinAmount.LessThan(brackets[j].MinAmount)
	})
	return pricing.NewChargeBracketSet(mode, brackets)
}

// EncodeChargeRules writes the canonical {charge_mode, brackets} shape.
func EncodeChargeRules(set *pricing.ChargeBracketSet) ([]byte, error) {
	if set.IsEmpty() {
		return nil, nil
	}
	rules := chargeRulesJSON{ChargeMode: string(set.Mode())}
	for _, b := range set.Brackets() {
		bj := bracketJSON{MinAmount: b.MinAmount, Charge: b.Charge}
		if b.MaxAmount != nil {
			bj.MaxAmount = decimal.NewNullDecimal(*b.MaxAmount)
		}
		rules.Brackets = append(rules.Brackets, bj)
	}
	return json.Marshal(rules)
}
