package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"alanshor-pos/internal/domain"
)

// Catalog is the read-only product lookup the engine depends on.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
}

// Options tune the checkout flow.
type Options struct {
	// ResetDelay is how long the confirmed acknowledgment stays up before
	// the session returns to idle. Zero means the 2 second default.
	ResetDelay time.Duration
	// StrictCash rejects a cash confirm when the cash received does not
	// cover the total. Off by default, matching the permissive legacy flow.
	StrictCash bool
	Logger     *log.Logger
}

// Manager owns the live checkout sessions, one per register view. Session
// operations are serialized per session; distinct sessions do not contend.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog    Catalog
	calc       Calculator
	resetDelay time.Duration
	strictCash bool
	logger     *log.Logger
}

const defaultResetDelay = 2 * time.Second

func NewManager(catalog Catalog, calc Calculator, opts Options) *Manager {
	delay := opts.ResetDelay
	if delay <= 0 {
		delay = defaultResetDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "[checkout] ", log.LstdFlags|log.LUTC)
	}
	return &Manager{
		sessions:   make(map[string]*Session),
		catalog:    catalog,
		calc:       calc,
		resetDelay: delay,
		strictCash: opts.StrictCash,
		logger:     logger,
	}
}

// Open starts a new session with an empty cart and returns its snapshot.
func (m *Manager) Open() *View {
	s := newSession(uuid.NewString())
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s.view(m.calc)
}

// Close tears a session down, cancelling any pending auto-reset.
func (m *Manager) Close(sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	s.mu.Lock()
	s.closed = true
	s.stopTimer()
	s.mu.Unlock()
	return nil
}

// Snapshot returns the session's cart, derived totals, state and payment
// input. Totals are recomputed on every call, never cached.
func (m *Manager) Snapshot(sessionID string) (*View, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(m.calc), nil
}

// AddItem puts one unit of the identified product in the cart, snapshotting
// its price at add time.
func (m *Manager) AddItem(ctx context.Context, sessionID, productID string) error {
	product, err := m.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return m.mutateCart(sessionID, func(c *Cart) {
		c.Add(*product)
	})
}

// SetQuantity overwrites a line's quantity; zero or below removes the line.
func (m *Manager) SetQuantity(sessionID, productID string, quantity int) error {
	return m.mutateCart(sessionID, func(c *Cart) {
		c.SetQuantity(productID, quantity)
	})
}

// RemoveItem deletes a line from the cart.
func (m *Manager) RemoveItem(sessionID, productID string) error {
	return m.mutateCart(sessionID, func(c *Cart) {
		c.Remove(productID)
	})
}

// Scan resolves a barcode typed or scanned into the search field. A match
// adds exactly one unit and reports true so the caller can clear the field;
// no match leaves the cart untouched.
func (m *Manager) Scan(ctx context.Context, sessionID, barcode string) (bool, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return false, nil
	}
	product, err := m.catalog.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Unknown barcode is a silent no-op.
			return false, nil
		}
		return false, err
	}
	if err := m.mutateCart(sessionID, func(c *Cart) { c.Add(*product) }); err != nil {
		return false, err
	}
	return true, nil
}

// Pay opens payment selection. A pay action on an empty cart is rejected
// and the session stays idle.
func (m *Manager) Pay(sessionID string) error {
	s, err := m.get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateIdle {
		return domain.ErrInvalidTransition
	}
	if s.cart.Empty() {
		return domain.ErrEmptyCart
	}
	s.state = domain.StatePaymentSelection
	return nil
}

// SelectPayment records the payment method and, for cash, the amount
// received. Allowed any number of times while payment selection is open;
// the cart is never touched.
func (m *Manager) SelectPayment(sessionID string, method domain.PaymentMethod, cashReceived int64) error {
	if !domain.ValidPaymentMethod(method) {
		return errors.New("unknown payment method")
	}
	if cashReceived < 0 {
		return errors.New("cash received must not be negative")
	}
	s, err := m.get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StatePaymentSelection {
		return domain.ErrInvalidTransition
	}
	s.payment = domain.PaymentState{Method: method, CashReceived: cashReceived}
	return nil
}

// Confirm accepts the payment and shows the success acknowledgment. After
// the reset delay the cart is cleared and the session returns to idle on its
// own. With StrictCash enabled, a cash payment below the total is refused.
func (m *Manager) Confirm(sessionID string) error {
	s, err := m.get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StatePaymentSelection {
		return domain.ErrInvalidTransition
	}
	if m.strictCash && s.payment.Method == domain.PaymentCash {
		totals := m.calc.Totals(s.cart.Lines(), s.payment)
		if s.payment.CashReceived < totals.Total {
			return domain.ErrInsufficientPayment
		}
	}
	s.state = domain.StateConfirmed
	s.resetTimer = time.AfterFunc(m.resetDelay, func() {
		m.finishConfirmed(s)
	})
	m.logger.Printf("session %s: payment confirmed (%s)", s.id, s.payment.Method)
	return nil
}

// CancelPayment closes payment selection and returns to building the cart.
// The cart is kept, and so is any cash amount already typed: reopening the
// payment sheet shows the previous value, matching the legacy flow.
func (m *Manager) CancelPayment(sessionID string) error {
	s, err := m.get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StatePaymentSelection {
		return domain.ErrInvalidTransition
	}
	s.state = domain.StateIdle
	return nil
}

// finishConfirmed is the auto-reset callback. It re-checks the state under
// the lock: a session closed or otherwise moved on while the timer was
// pending is left alone.
func (m *Manager) finishConfirmed(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != domain.StateConfirmed {
		return
	}
	s.reset()
}

func (m *Manager) get(sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// mutateCart applies fn to the session's cart. Cart edits are allowed while
// building the cart or while the payment sheet is open, but not during the
// confirmed acknowledgment, whose reset would race the edit.
func (m *Manager) mutateCart(sessionID string, fn func(*Cart)) error {
	s, err := m.get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateConfirmed {
		return domain.ErrInvalidTransition
	}
	fn(&s.cart)
	return nil
}
