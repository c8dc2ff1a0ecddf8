package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReservedVariantName labels an item's base price in offer dedup keys, so no
// catalog variant may carry it.
const ReservedVariantName = "base"

// Variant is a named price option of a menu item, such as "Half" or "Full".
type Variant struct {
	Name  string
	Price decimal.Decimal
}

// MenuItem is a catalog entry owned by a partner.
type MenuItem struct {
	id        string
	partnerID string
	name      string
	category  string
	basePrice decimal.Decimal
	variants  []Variant
	isCustom  bool // offer-only item that is not listed in the regular menu
	createdAt time.Time
	updatedAt time.Time
}

// NewMenuItem creates a new menu item after validating its prices and variants.
func NewMenuItem(
	id string,
	partnerID string,
	name string,
	category string,
	basePrice decimal.Decimal,
	variants []Variant,
	isCustom bool,
	now time.Time,
) (*MenuItem, error) {
	if id == "" {
		return nil, ErrMenuItemIDRequired
	}
	if partnerID == "" {
		return nil, ErrPartnerIDRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if err := validateVariants(variants); err != nil {
		return nil, err
	}

	return &MenuItem{
		id:        id,
		partnerID: partnerID,
		name:      strings.TrimSpace(name),
		category:  category,
		basePrice: basePrice,
		variants:  append([]Variant(nil), variants...),
		isCustom:  isCustom,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMenuItem rebuilds a menu item from persistence. Stored rows are
// trusted as-is apart from identity; variant payloads were already
// normalized by the persistence mapper.
func ReconstructMenuItem(
	id string,
	partnerID string,
	name string,
	category string,
	basePrice decimal.Decimal,
	variants []Variant,
	isCustom bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*MenuItem, error) {
	if id == "" {
		return nil, ErrMenuItemIDRequired
	}
	if partnerID == "" {
		return nil, ErrPartnerIDRequired
	}

	return &MenuItem{
		id:        id,
		partnerID: partnerID,
		name:      name,
		category:  category,
		basePrice: basePrice,
		variants:  append([]Variant(nil), variants...),
		isCustom:  isCustom,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateVariants(variants []Variant) error {
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return ErrVariantNameRequired
		}
		if name == ReservedVariantName {
			return fmt.Errorf("%w: %q", ErrReservedVariantName, name)
		}
		if v.Price.IsNegative() {
			return fmt.Errorf("%w: variant %q", ErrNegativePrice, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVariant, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (m *MenuItem) ID() string                 { return m.id }
func (m *MenuItem) PartnerID() string          { return m.partnerID }
func (m *MenuItem) Name() string               { return m.name }
func (m *MenuItem) Category() string           { return m.category }
func (m *MenuItem) BasePrice() decimal.Decimal { return m.basePrice }
func (m *MenuItem) IsCustom() bool             { return m.isCustom }
func (m *MenuItem) CreatedAt() time.Time       { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time       { return m.updatedAt }

// Variants returns a copy of the item's variants in display order.
func (m *MenuItem) Variants() []Variant {
	return append([]Variant(nil), m.variants...)
}

// HasVariants reports whether the item is sold in variants.
func (m *MenuItem) HasVariants() bool {
	return len(m.variants) > 0
}

// Variant looks up a variant by name.
func (m *MenuItem) Variant(name string) (Variant, bool) {
	for _, v := range m.variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// PriceFor returns the catalog price of the named variant, or the base price
// when the name is empty or unknown.
func (m *MenuItem) PriceFor(variantName string) decimal.Decimal {
	if variantName != "" {
		if v, ok := m.Variant(variantName); ok {
			return v.Price
		}
	}
	return m.basePrice
}
