package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// scanIncrementMaxTries bounds retries of the scan increment. The increment
// is not idempotent: a commit whose acknowledgement is lost is retried and
// counted twice, so counters may run high but never low.
const scanIncrementMaxTries = 3

// GateConfig tunes the entitlement gate.
type GateConfig struct {
	DomesticCountry     string
	ScanWindow          entitlement.ScanWindow
	IncrementMaxElapsed time.Duration
}

// EvaluateAccessCommand identifies the storefront being requested, either by
// partner ID or by QR code.
type EvaluateAccessCommand struct {
	PartnerID string
	QRCode    string
	// TrackScan requests the scan-counter side effect on OK.
	TrackScan bool
	// AlreadyCounted is set when the visitor carries a marker for this window.
	AlreadyCounted bool
	// ViewerPartnerID is the authenticated partner viewing the page, if any.
	ViewerPartnerID string
}

// AccessResult is the gate outcome. Partner is set whenever it was found.
type AccessResult struct {
	Disposition entitlement.Disposition
	Partner     *partner.Partner
	QRCode      *partner.QRCode
	// Counted reports that a scan was recorded for this request.
	Counted bool
}

// IsSelfView reports whether the viewer is the partner that owns the storefront.
func (r *AccessResult) IsSelfView(viewerPartnerID string) bool {
	return r.Partner != nil && viewerPartnerID != "" && viewerPartnerID == r.Partner.ID()
}

// EvaluateAccessUseCase runs the entitlement gate with fresh subscription and
// scan reads. Gating reads fail closed.
type EvaluateAccessUseCase struct {
	partnerRepo partner.Repository
	qrCodeRepo  partner.QRCodeRepository
	subReader   entitlement.SubscriptionReader
	planReader  entitlement.PlanCatalogReader
	scanCounter entitlement.ScanCounter
	config      GateConfig
	logger      logger.Interface
	now         func() time.Time
	newBackOff  func() backoff.BackOff
}

func NewEvaluateAccessUseCase(
	partnerRepo partner.Repository,
	qrCodeRepo partner.QRCodeRepository,
	subReader entitlement.SubscriptionReader,
	planReader entitlement.PlanCatalogReader,
	scanCounter entitlement.ScanCounter,
	config GateConfig,
	logger logger.Interface,
) *EvaluateAccessUseCase {
	if config.DomesticCountry == "" {
		config.DomesticCountry = "IN"
	}
	config.DomesticCountry = partner.NormalizeCountry(config.DomesticCountry)
	if !config.ScanWindow.IsValid() {
		config.ScanWindow = entitlement.ScanWindowMonthly
	}
	if config.IncrementMaxElapsed <= 0 {
		config.IncrementMaxElapsed = 2 * time.Second
	}
	return &EvaluateAccessUseCase{
		partnerRepo: partnerRepo,
		qrCodeRepo:  qrCodeRepo,
		subReader:   subReader,
		planReader:  planReader,
		scanCounter: scanCounter,
		config:      config,
		logger:      logger,
		now:         biztime.NowUTC,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			return b
		},
	}
}

func (uc *EvaluateAccessUseCase) Execute(ctx context.Context, cmd EvaluateAccessCommand) (*AccessResult, error) {
	now := uc.now()
	result := &AccessResult{Disposition: entitlement.DispositionNotFound}

	partnerID := cmd.PartnerID
	if cmd.QRCode != "" {
		qr, err := uc.qrCodeRepo.GetByCode(ctx, cmd.QRCode)
		if err != nil {
			if errors.Is(err, partner.ErrQRCodeNotFound) {
				return result, nil
			}
			uc.logger.Errorw("failed to resolve qr code", "code", cmd.QRCode, "error", err)
			return nil, apperrors.NewUnavailableError("storefront is temporarily unavailable")
		}
		if partnerID != "" && partnerID != qr.PartnerID() {
			return result, nil
		}
		partnerID = qr.PartnerID()
		result.QRCode = qr
	}
	if partnerID == "" {
		return result, nil
	}

	p, err := uc.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, partner.ErrPartnerNotFound) {
			return result, nil
		}
		uc.logger.Errorw("failed to get partner", "partner_id", partnerID, "error", err)
		return nil, apperrors.NewUnavailableError("storefront is temporarily unavailable")
	}
	result.Partner = p

	in := entitlement.DecisionInput{
		Partner:         &entitlement.PartnerStanding{Active: p.IsActive(), Country: p.Country()},
		DomesticCountry: uc.config.DomesticCountry,
		ScanLimit:       entitlement.Unlimited,
		Now:             now,
	}
	if p.IsActive() {
		in.Subscription = uc.readSubscription(ctx, p.ID())
	}
	if p.IsActive() && !in.Subscription.IsExpiredAt(now) && in.IsInternational() {
		in.ScanLimit, in.ScanCount = uc.readUsage(ctx, p.ID(), in.Subscription.PlanID, now)
	}

	result.Disposition = entitlement.Decide(in)
	if result.Disposition != entitlement.DispositionOK {
		uc.logger.Infow("storefront request denied",
			"partner_id", p.ID(),
			"disposition", result.Disposition.String(),
			"scan_count", in.ScanCount,
			"scan_limit", in.ScanLimit,
		)
		return result, nil
	}

	if cmd.TrackScan && !cmd.AlreadyCounted && !result.IsSelfView(cmd.ViewerPartnerID) {
		result.Counted = uc.recordScan(ctx, result, now)
	}
	return result, nil
}

// readSubscription returns nil when the subscription is missing or cannot be read.
func (uc *EvaluateAccessUseCase) readSubscription(ctx context.Context, partnerID string) *entitlement.SubscriptionState {
	sub, err := uc.subReader.GetCurrent(ctx, partnerID)
	if err != nil {
		if !errors.Is(err, entitlement.ErrSubscriptionNotFound) {
			uc.logger.Errorw("failed to read subscription, denying request",
				"partner_id", partnerID,
				"error", err,
			)
		}
		return nil
	}
	return sub
}

// readUsage returns the plan limit and the current count. Read failures
// yield a count at or over the limit.
func (uc *EvaluateAccessUseCase) readUsage(ctx context.Context, partnerID, planID string, now time.Time) (limit, count int64) {
	plan, err := uc.planReader.GetPlan(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to read plan, denying request",
			"partner_id", partnerID,
			"plan_id", planID,
			"error", err,
		)
		return 0, 0
	}

	limit = plan.ScanLimit()
	if limit == entitlement.Unlimited {
		return limit, 0
	}

	count, err = uc.scanCounter.PartnerCount(ctx, partnerID, uc.config.ScanWindow, now)
	if err != nil {
		uc.logger.Errorw("failed to read scan count, denying request",
			"partner_id", partnerID,
			"window", uc.config.ScanWindow.String(),
			"error", err,
		)
		return limit, limit
	}
	return limit, count
}

// recordScan increments the scan counters, retrying transient failures. A
// failed increment never changes the disposition.
func (uc *EvaluateAccessUseCase) recordScan(ctx context.Context, result *AccessResult, now time.Time) bool {
	event := entitlement.ScanEvent{PartnerID: result.Partner.ID(), At: now}
	if result.QRCode != nil {
		event.QRCodeID = result.QRCode.ID()
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, uc.scanCounter.Increment(ctx, event)
	},
		backoff.WithBackOff(uc.newBackOff()),
		backoff.WithMaxTries(scanIncrementMaxTries),
		backoff.WithMaxElapsedTime(uc.config.IncrementMaxElapsed),
	)
	if err != nil {
		uc.logger.Errorw("failed to record scan",
			"partner_id", event.PartnerID,
			"qr_code_id", event.QRCodeID,
			"error", err,
		)
		return false
	}
	return true
}
