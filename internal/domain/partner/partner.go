package partner

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the operational state of a partner.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Partner represents a restaurant that owns a menu and its QR codes
type Partner struct {
	id          string
	name        string
	status      Status
	country     string
	taxPercent  decimal.Decimal
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// ReconstructPartner reconstructs a partner from persistence.
// An unknown status is treated as inactive so a corrupt row never serves a storefront.
func ReconstructPartner(
	id string,
	name string,
	status Status,
	country string,
	taxPercent decimal.Decimal,
	description string,
	createdAt, updatedAt time.Time,
) (*Partner, error) {
	if id == "" {
		return nil, ErrPartnerIDRequired
	}
	if taxPercent.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTaxPercent, taxPercent)
	}
	if !status.IsValid() {
		status = StatusInactive
	}

	return &Partner{
		id:          id,
		name:        name,
		status:      status,
		country:     NormalizeCountry(country),
		taxPercent:  taxPercent,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// NormalizeCountry upper-cases and trims an ISO country code
func NormalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}

// ID returns the partner ID
func (p *Partner) ID() string {
	return p.id
}

// Name returns the display name
func (p *Partner) Name() string {
	return p.name
}

// Status returns the partner status
func (p *Partner) Status() Status {
	return p.status
}

// Country returns the ISO country code
func (p *Partner) Country() string {
	return p.country
}

// TaxPercent returns the tax rate charged on the food subtotal
func (p *Partner) TaxPercent() decimal.Decimal {
	return p.taxPercent
}

// Description returns the storefront description
func (p *Partner) Description() string {
	return p.description
}

// CreatedAt returns when the partner was created
func (p *Partner) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the partner was last updated
func (p *Partner) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsActive checks if the partner may serve a storefront
func (p *Partner) IsActive() bool {
	return p.status == StatusActive
}

// IsDomestic checks if the partner operates in the given home country
func (p *Partner) IsDomestic(homeCountry string) bool {
	return p.country == NormalizeCountry(homeCountry)
}
