// Package testutil provides mock implementations for testing the storefront application layer.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// MockPartnerRepository is a mock implementation of partner.Repository.
type MockPartnerRepository struct {
	mu       sync.RWMutex
	partners map[string]*partner.Partner
	getError error
}

// NewMockPartnerRepository creates a new mock partner repository.
func NewMockPartnerRepository() *MockPartnerRepository {
	return &MockPartnerRepository{partners: make(map[string]*partner.Partner)}
}

// AddPartner stores a partner.
func (m *MockPartnerRepository) AddPartner(p *partner.Partner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partners[p.ID()] = p
}

// SetGetError sets the error returned by GetByID.
func (m *MockPartnerRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// GetByID retrieves a partner by ID.
func (m *MockPartnerRepository) GetByID(ctx context.Context, id string) (*partner.Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getError != nil {
		return nil, m.getError
	}
	p, ok := m.partners[id]
	if !ok {
		return nil, partner.ErrPartnerNotFound
	}
	return p, nil
}

// MockQRCodeRepository is a mock implementation of partner.QRCodeRepository.
type MockQRCodeRepository struct {
	mu       sync.RWMutex
	codes    map[string]*partner.QRCode
	getError error
}

// NewMockQRCodeRepository creates a new mock QR code repository.
func NewMockQRCodeRepository() *MockQRCodeRepository {
	return &MockQRCodeRepository{codes: make(map[string]*partner.QRCode)}
}

// AddQRCode stores a QR code.
func (m *MockQRCodeRepository) AddQRCode(qr *partner.QRCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[qr.Code()] = qr
}

// SetGetError sets the error returned by GetByCode.
func (m *MockQRCodeRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// GetByCode retrieves a QR code by its printed code.
func (m *MockQRCodeRepository) GetByCode(ctx context.Context, code string) (*partner.QRCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getError != nil {
		return nil, m.getError
	}
	qr, ok := m.codes[code]
	if !ok {
		return nil, partner.ErrQRCodeNotFound
	}
	return qr, nil
}

// MockQRGroupRepository is a mock implementation of partner.QRGroupRepository.
type MockQRGroupRepository struct {
	mu       sync.RWMutex
	groups   map[string]*partner.QRGroup
	getError error
}

// NewMockQRGroupRepository creates a new mock QR group repository.
func NewMockQRGroupRepository() *MockQRGroupRepository {
	return &MockQRGroupRepository{groups: make(map[string]*partner.QRGroup)}
}

// AddQRGroup stores a QR group.
func (m *MockQRGroupRepository) AddQRGroup(g *partner.QRGroup) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[g.ID()] = g
}

// SetGetError sets the error returned by GetByID.
func (m *MockQRGroupRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// GetByID retrieves a QR group by ID.
func (m *MockQRGroupRepository) GetByID(ctx context.Context, id string) (*partner.QRGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getError != nil {
		return nil, m.getError
	}
	g, ok := m.groups[id]
	if !ok {
		return nil, partner.ErrQRGroupNotFound
	}
	return g, nil
}

// MockSubscriptionReader is a mock implementation of entitlement.SubscriptionReader.
type MockSubscriptionReader struct {
	mu       sync.RWMutex
	subs     map[string]*entitlement.SubscriptionState
	getError error
	calls    int
}

// NewMockSubscriptionReader creates a new mock subscription reader.
func NewMockSubscriptionReader() *MockSubscriptionReader {
	return &MockSubscriptionReader{subs: make(map[string]*entitlement.SubscriptionState)}
}

// SetSubscription stores the subscription of a partner.
func (m *MockSubscriptionReader) SetSubscription(sub *entitlement.SubscriptionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[sub.PartnerID] = sub
}

// SetGetError sets the error returned by GetCurrent.
func (m *MockSubscriptionReader) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// Calls returns how many times GetCurrent was called.
func (m *MockSubscriptionReader) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// GetCurrent retrieves the current subscription of a partner.
func (m *MockSubscriptionReader) GetCurrent(ctx context.Context, partnerID string) (*entitlement.SubscriptionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.getError != nil {
		return nil, m.getError
	}
	sub, ok := m.subs[partnerID]
	if !ok {
		return nil, entitlement.ErrSubscriptionNotFound
	}
	c := *sub
	return &c, nil
}

// MockPlanCatalogReader is a mock implementation of entitlement.PlanCatalogReader.
type MockPlanCatalogReader struct {
	mu       sync.RWMutex
	plans    map[string]*entitlement.Plan
	getError error
}

// NewMockPlanCatalogReader creates a new mock plan catalog.
func NewMockPlanCatalogReader() *MockPlanCatalogReader {
	return &MockPlanCatalogReader{plans: make(map[string]*entitlement.Plan)}
}

// AddPlan stores a plan.
func (m *MockPlanCatalogReader) AddPlan(p *entitlement.Plan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID] = p
}

// SetGetError sets the error returned by GetPlan.
func (m *MockPlanCatalogReader) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// GetPlan retrieves a plan by ID.
func (m *MockPlanCatalogReader) GetPlan(ctx context.Context, planID string) (*entitlement.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getError != nil {
		return nil, m.getError
	}
	p, ok := m.plans[planID]
	if !ok {
		return nil, entitlement.ErrPlanNotFound
	}
	return p, nil
}

// MockScanCounter is an in-memory entitlement.ScanCounter.
type MockScanCounter struct {
	mu             sync.Mutex
	monthly        map[string]int64
	lifetime       map[string]int64
	perQR          map[string]int64
	events         []entitlement.ScanEvent
	countError     error
	incrementError error
	failIncrements int
	incrementCalls int
	countCalls     int
}

// NewMockScanCounter creates a new mock scan counter.
func NewMockScanCounter() *MockScanCounter {
	return &MockScanCounter{
		monthly:  make(map[string]int64),
		lifetime: make(map[string]int64),
		perQR:    make(map[string]int64),
	}
}

func monthlyKey(partnerID string, at time.Time) string {
	return partnerID + "|" + biztime.MonthKey(at)
}

// SetPartnerCount seeds a partner's counters for the month containing at.
func (m *MockScanCounter) SetPartnerCount(partnerID string, at time.Time, monthly, lifetime int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.monthly[monthlyKey(partnerID, at)] = monthly
	m.lifetime[partnerID] = lifetime
}

// SetCountError sets the error returned by PartnerCount and QRCount.
func (m *MockScanCounter) SetCountError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countError = err
}

// SetIncrementError makes the next n increments fail with err. n < 0 fails every call.
func (m *MockScanCounter) SetIncrementError(err error, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incrementError = err
	m.failIncrements = n
}

// Events returns every recorded scan.
func (m *MockScanCounter) Events() []entitlement.ScanEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entitlement.ScanEvent(nil), m.events...)
}

// IncrementCalls returns how many times Increment was called.
func (m *MockScanCounter) IncrementCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incrementCalls
}

// CountCalls returns how many times PartnerCount was called.
func (m *MockScanCounter) CountCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countCalls
}

// Increment records one scan.
func (m *MockScanCounter) Increment(ctx context.Context, event entitlement.ScanEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incrementCalls++
	if m.incrementError != nil && m.failIncrements != 0 {
		if m.failIncrements > 0 {
			m.failIncrements--
		}
		return m.incrementError
	}
	m.monthly[monthlyKey(event.PartnerID, event.At)]++
	m.lifetime[event.PartnerID]++
	if event.QRCodeID != "" {
		m.perQR[event.QRCodeID]++
	}
	m.events = append(m.events, event)
	return nil
}

// PartnerCount returns a partner's scans in a window.
func (m *MockScanCounter) PartnerCount(ctx context.Context, partnerID string, window entitlement.ScanWindow, at time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++
	if m.countError != nil {
		return 0, m.countError
	}
	if window == entitlement.ScanWindowLifetime {
		return m.lifetime[partnerID], nil
	}
	return m.monthly[monthlyKey(partnerID, at)], nil
}

// QRCount returns a QR code's lifetime scans.
func (m *MockScanCounter) QRCount(ctx context.Context, qrCodeID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countError != nil {
		return 0, m.countError
	}
	return m.perQR[qrCodeID], nil
}

// MockCatalogLoader serves fixed menus and offers.
type MockCatalogLoader struct {
	mu          sync.RWMutex
	items       map[string][]*menu.MenuItem
	offers      map[string][]*offer.Offer
	menuError   error
	offersError error
}

// NewMockCatalogLoader creates a new mock catalog loader.
func NewMockCatalogLoader() *MockCatalogLoader {
	return &MockCatalogLoader{
		items:  make(map[string][]*menu.MenuItem),
		offers: make(map[string][]*offer.Offer),
	}
}

// SetMenu stores a partner's items and offers.
func (m *MockCatalogLoader) SetMenu(partnerID string, items []*menu.MenuItem, offers []*offer.Offer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[partnerID] = items
	m.offers[partnerID] = offers
}

// SetMenuError sets the error returned by MenuItems.
func (m *MockCatalogLoader) SetMenuError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menuError = err
}

// SetOffersError sets the error returned by LiveOffers.
func (m *MockCatalogLoader) SetOffersError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offersError = err
}

// MenuItems returns a partner's items.
func (m *MockCatalogLoader) MenuItems(ctx context.Context, partnerID string) ([]*menu.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.menuError != nil {
		return nil, m.menuError
	}
	return m.items[partnerID], nil
}

// LiveOffers returns a partner's offers.
func (m *MockCatalogLoader) LiveOffers(ctx context.Context, partnerID string, now time.Time) ([]*offer.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.offersError != nil {
		return nil, m.offersError
	}
	return m.offers[partnerID], nil
}

// MockLogger is a mock implementation of logger.Interface that records entries.
type MockLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// LogEntry records a log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{entries: make([]LogEntry, 0)}
}

func (m *MockLogger) Debug(msg string, args ...any) { m.log("DEBUG", msg, args...) }
func (m *MockLogger) Info(msg string, args ...any)  { m.log("INFO", msg, args...) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.log("WARN", msg, args...) }
func (m *MockLogger) Error(msg string, args ...any) { m.log("ERROR", msg, args...) }
func (m *MockLogger) Fatal(msg string, args ...any) { m.log("FATAL", msg, args...) }

func (m *MockLogger) With(args ...any) logger.Interface  { return m }
func (m *MockLogger) Named(name string) logger.Interface { return m }

func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	m.log("DEBUG", msg, keysAndValues...)
}

func (m *MockLogger) Infow(msg string, keysAndValues ...interface{}) {
	m.log("INFO", msg, keysAndValues...)
}

func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	m.log("WARN", msg, keysAndValues...)
}

func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	m.log("ERROR", msg, keysAndValues...)
}

func (m *MockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	m.log("FATAL", msg, keysAndValues...)
}

func (m *MockLogger) log(level, msg string, fields ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  make(map[string]interface{}),
	}
	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			entry.Fields[key] = fields[i+1]
		}
	}
	m.entries = append(m.entries, entry)
}

// GetEntries returns all logged entries.
func (m *MockLogger) GetEntries() []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]LogEntry(nil), m.entries...)
}

// HasEntry reports whether a message was logged at level.
func (m *MockLogger) HasEntry(level, msg string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}
