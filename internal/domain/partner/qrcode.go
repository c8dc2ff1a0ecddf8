package partner

import (
	"time"

	"github.com/tablescan/qrmenu/internal/domain/pricing"
)

// QRCode is a printed table code that resolves to its partner.
type QRCode struct {
	id         string
	code       string
	partnerID  string
	qrGroupID  string
	tableLabel string
	createdAt  time.Time
}

func ReconstructQRCode(id, code, partnerID, qrGroupID, tableLabel string, createdAt time.Time) (*QRCode, error) {
	if id == "" || code == "" {
		return nil, ErrQRCodeRequired
	}
	if partnerID == "" {
		return nil, ErrPartnerIDRequired
	}
	return &QRCode{
		id:         id,
		code:       code,
		partnerID:  partnerID,
		qrGroupID:  qrGroupID,
		tableLabel: tableLabel,
		createdAt:  createdAt,
	}, nil
}

func (q *QRCode) ID() string           { return q.id }
func (q *QRCode) Code() string         { return q.code }
func (q *QRCode) PartnerID() string    { return q.partnerID }
func (q *QRCode) TableLabel() string   { return q.tableLabel }
func (q *QRCode) CreatedAt() time.Time { return q.createdAt }

// QRGroupID returns the group whose charge rules apply, or "" when ungrouped.
func (q *QRCode) QRGroupID() string { return q.qrGroupID }

// QRGroup shares one set of surcharge brackets across several tables.
type QRGroup struct {
	id        string
	partnerID string
	name      string
	charges   *pricing.ChargeBracketSet
}

// ReconstructQRGroup rebuilds a group. A nil bracket set means no surcharge.
func ReconstructQRGroup(id, partnerID, name string, charges *pricing.ChargeBracketSet) (*QRGroup, error) {
	if id == "" {
		return nil, ErrQRGroupNotFound
	}
	if partnerID == "" {
		return nil, ErrPartnerIDRequired
	}
	if charges == nil {
		charges = pricing.EmptyChargeBracketSet()
	}
	return &QRGroup{id: id, partnerID: partnerID, name: name, charges: charges}, nil
}

func (g *QRGroup) ID() string                         { return g.id }
func (g *QRGroup) PartnerID() string                  { return g.partnerID }
func (g *QRGroup) Name() string                       { return g.name }
func (g *QRGroup) Charges() *pricing.ChargeBracketSet { return g.charges }
