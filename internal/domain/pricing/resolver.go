package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
)

// Catalog indexes a partner's menu items by ID.
type Catalog struct {
	items map[string]*menu.MenuItem
	order []*menu.MenuItem
}

// NewCatalog builds a catalog. Later duplicates of an ID are ignored.
func NewCatalog(items []*menu.MenuItem) *Catalog {
	c := &Catalog{
		items: make(map[string]*menu.MenuItem, len(items)),
		order: make([]*menu.MenuItem, 0, len(items)),
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, exists := c.items[item.ID()]; exists {
			continue
		}
		c.items[item.ID()] = item
		c.order = append(c.order, item)
	}
	return c
}

// Item returns the menu item with the given ID.
func (c *Catalog) Item(id string) (*menu.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns the items in the order they were supplied.
func (c *Catalog) Items() []*menu.MenuItem {
	return append([]*menu.MenuItem(nil), c.order...)
}

func (c *Catalog) Len() int { return len(c.order) }

// Candidate is an offer evaluated against the catalog price it discounts.
type Candidate struct {
	Offer           *offer.Offer
	OriginalPrice   decimal.Decimal
	DiscountPercent int64
}

// NewCandidate evaluates o against item.
func NewCandidate(o *offer.Offer, item *menu.MenuItem) Candidate {
	original := OriginalPrice(o, item)
	return Candidate{
		Offer:           o,
		OriginalPrice:   original,
		DiscountPercent: DiscountPercent(original, o.OfferPrice()),
	}
}

// Beats reports whether c wins a dedup contest against other: the greater
// discount wins, then the earlier creation time, then the smaller ID.
func (c Candidate) Beats(other Candidate) bool {
	if c.DiscountPercent != other.DiscountPercent {
		return c.DiscountPercent > other.DiscountPercent
	}
	if !c.Offer.CreatedAt().Equal(other.Offer.CreatedAt()) {
		return c.Offer.CreatedAt().Before(other.Offer.CreatedAt())
	}
	return c.Offer.ID() < other.Offer.ID()
}

// OriginalPrice is the price an offer discounts: the variant price captured on
// the offer, else the catalog price of that variant, else the base price.
func OriginalPrice(o *offer.Offer, item *menu.MenuItem) decimal.Decimal {
	if v := o.Variant(); v != nil {
		if v.Price.Valid {
			return v.Price.Decimal
		}
		if cv, ok := item.Variant(v.Name); ok {
			return cv.Price
		}
	}
	return item.BasePrice()
}

// ResolvedPrice is the governing price of one item+variant key.
type ResolvedPrice struct {
	Key                        offer.Key
	MenuItemID                 string
	VariantName                string
	OfferID                    string
	Price                      decimal.Decimal
	OriginalPrice              decimal.Decimal
	DiscountPercent            int64
	IsUpcoming                 bool
	HasMultipleVariantsOnOffer bool
	StartsAt                   time.Time
	EndsAt                     time.Time
}

// HasOffer reports whether an offer governs this price.
func (p ResolvedPrice) HasOffer() bool { return p.OfferID != "" }

// SkippedOffer is an offer the resolver could not evaluate.
type SkippedOffer struct {
	OfferID    string
	MenuItemID string
	Reason     string
}

// Resolution is the deduplicated price view of a catalog at one instant.
type Resolution struct {
	Prices  []ResolvedPrice
	Skipped []SkippedOffer

	catalog *Catalog
	byKey   map[offer.Key]int
}

// Get returns the resolved offer price for key, if an offer governs it.
func (r *Resolution) Get(key offer.Key) (ResolvedPrice, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return ResolvedPrice{}, false
	}
	return r.Prices[i], true
}

// Lookup returns the display price of an item or variant. Keys without an
// offer fall back to the catalog price with a zero discount. The boolean is
// false only when the item or named variant is not in the catalog.
func (r *Resolution) Lookup(menuItemID, variantName string) (ResolvedPrice, bool) {
	if p, ok := r.Get(offer.NewKey(menuItemID, variantName)); ok {
		return p, true
	}
	price, err := r.catalogPrice(menuItemID, variantName)
	if err != nil {
		return ResolvedPrice{}, false
	}
	return ResolvedPrice{
		Key:           offer.NewKey(menuItemID, variantName),
		MenuItemID:    menuItemID,
		VariantName:   variantName,
		Price:         price,
		OriginalPrice: price,
	}, true
}

// EffectivePrice returns the unit price an order line is charged. Only
// active offers apply; upcoming offers are display-only.
func (r *Resolution) EffectivePrice(menuItemID, variantName string) (decimal.Decimal, error) {
	price, err := r.catalogPrice(menuItemID, variantName)
	if err != nil {
		return decimal.Zero, err
	}
	if p, ok := r.Get(offer.NewKey(menuItemID, variantName)); ok && !p.IsUpcoming {
		return p.Price, nil
	}
	return price, nil
}

func (r *Resolution) catalogPrice(menuItemID, variantName string) (decimal.Decimal, error) {
	item, ok := r.catalog.Item(menuItemID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", menu.ErrMenuItemNotFound, menuItemID)
	}
	if variantName == "" {
		return item.BasePrice(), nil
	}
	v, ok := item.Variant(variantName)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", menu.ErrVariantNotFound, menuItemID, variantName)
	}
	return v.Price, nil
}

// Resolve deduplicates offers into at most one governing offer per
// item+variant key. Expired offers and offers not valid for channel are
// dropped; an empty channel accepts every offer. Offers on items or variants
// missing from the catalog are reported in Skipped. The result is sorted by key and
// depends only on the inputs.
func Resolve(offers []*offer.Offer, catalog *Catalog, now time.Time, channel offer.Type) *Resolution {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	res := &Resolution{catalog: catalog, byKey: make(map[offer.Key]int)}

	active := make(map[offer.Key]Candidate)
	upcoming := make(map[offer.Key]Candidate)

	for _, o := range offers {
		if o == nil || !o.AppliesTo(channel) || o.IsExpiredAt(now) {
			continue
		}
		item, ok := catalog.Item(o.MenuItemID())
		if !ok {
			res.Skipped = append(res.Skipped, SkippedOffer{
				OfferID:    o.ID(),
				MenuItemID: o.MenuItemID(),
				Reason:     "menu item not in catalog",
			})
			continue
		}
		if item.PartnerID() != o.PartnerID() {
			res.Skipped = append(res.Skipped, SkippedOffer{
				OfferID:    o.ID(),
				MenuItemID: o.MenuItemID(),
				Reason:     "menu item belongs to another partner",
			})
			continue
		}
		if name := o.VariantName(); name != "" {
			if _, ok := item.Variant(name); !ok {
				res.Skipped = append(res.Skipped, SkippedOffer{
					OfferID:    o.ID(),
					MenuItemID: o.MenuItemID(),
					Reason:     "variant not in catalog",
				})
				continue
			}
		}

		c := NewCandidate(o, item)
		partition := active
		if o.IsUpcomingAt(now) {
			partition = upcoming
		}
		if cur, exists := partition[o.Key()]; !exists || c.Beats(cur) {
			partition[o.Key()] = c
		}
	}

	variantKeysOnOffer := make(map[string]int)
	for _, c := range active {
		if c.Offer.VariantName() != "" {
			variantKeysOnOffer[c.Offer.MenuItemID()]++
		}
	}

	for key, c := range active {
		p := toResolved(key, c, false)
		p.HasMultipleVariantsOnOffer = variantKeysOnOffer[c.Offer.MenuItemID()] > 1
		res.Prices = append(res.Prices, p)
	}
	for key, c := range upcoming {
		if _, governed := active[key]; governed {
			continue
		}
		res.Prices = append(res.Prices, toResolved(key, c, true))
	}

	sort.Slice(res.Prices, func(i, j int) bool { return res.Prices[i].Key < res.Prices[j].Key })
	for i, p := range res.Prices {
		res.byKey[p.Key] = i
	}
	sort.Slice(res.Skipped, func(i, j int) bool { return res.Skipped[i].OfferID < res.Skipped[j].OfferID })

	return res
}

func toResolved(key offer.Key, c Candidate, upcoming bool) ResolvedPrice {
	return ResolvedPrice{
		Key:             key,
		MenuItemID:      c.Offer.MenuItemID(),
		VariantName:     c.Offer.VariantName(),
		OfferID:         c.Offer.ID(),
		Price:           c.Offer.OfferPrice(),
		OriginalPrice:   c.OriginalPrice,
		DiscountPercent: c.DiscountPercent,
		IsUpcoming:      upcoming,
		StartsAt:        c.Offer.StartTime(),
		EndsAt:          c.Offer.EndTime(),
	}
}
