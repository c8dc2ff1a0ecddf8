package offer

import (
	"fmt"
	"strings"

	"github.com/tablescan/qrmenu/internal/domain/menu"
)

// Type restricts an offer to an ordering channel.
type Type string

const (
	TypeDelivery Type = "delivery"
	TypeDineIn   Type = "dine_in"
	TypeAll      Type = "all"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeDelivery, TypeDineIn, TypeAll:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// ParseType parses an offer type; an empty string means TypeAll.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeAll, nil
	}
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidOfferType, s)
	}
	return t, nil
}

// ParseChannel parses an ordering channel; empty means "any channel".
func ParseChannel(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch Type(s) {
	case "":
		return "", nil
	case TypeDelivery, TypeDineIn:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidChannel, s)
}

// BaseVariantLabel stands in for the variant name of a base-item offer.
const BaseVariantLabel = menu.ReservedVariantName

// Key is the dedup slot of an offer: menu item plus variant.
type Key string

// NewKey builds "menuItemID|variantName", using "base" when there is no variant.
func NewKey(menuItemID, variantName string) Key {
	if variantName == "" {
		variantName = BaseVariantLabel
	}
	return Key(menuItemID + "|" + variantName)
}
