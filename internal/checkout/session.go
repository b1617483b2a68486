package checkout

import (
	"sync"
	"time"

	"alanshor-pos/internal/domain"
)

// Session is one register's open transaction: its cart, payment input and
// position in the checkout flow. All access goes through the Manager, which
// locks the session around every operation.
type Session struct {
	mu sync.Mutex

	id      string
	cart    Cart
	payment domain.PaymentState
	state   domain.CheckoutState

	// resetTimer is armed on confirm and drives the automatic return to
	// idle. It must be stopped on teardown so the callback cannot touch a
	// session that is already gone.
	resetTimer *time.Timer
	closed     bool
}

// View is a read-only snapshot of a session for the presentation layer.
type View struct {
	ID      string               `json:"id"`
	Lines   []domain.LineItem    `json:"lineItems"`
	Totals  domain.Totals        `json:"totals"`
	State   domain.CheckoutState `json:"state"`
	Payment domain.PaymentState  `json:"payment"`
}

func newSession(id string) *Session {
	return &Session{
		id:      id,
		payment: domain.DefaultPaymentState(),
		state:   domain.StateIdle,
	}
}

// reset returns the session to idle after a completed transaction: cart
// cleared, payment back to defaults. Caller holds the lock.
func (s *Session) reset() {
	s.cart.Clear()
	s.payment = domain.DefaultPaymentState()
	s.state = domain.StateIdle
	s.resetTimer = nil
}

// stopTimer cancels a pending auto-reset, if any. Caller holds the lock.
func (s *Session) stopTimer() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}

func (s *Session) view(calc Calculator) *View {
	lines := s.cart.Lines()
	return &View{
		ID:      s.id,
		Lines:   lines,
		Totals:  calc.Totals(lines, s.payment),
		State:   s.state,
		Payment: s.payment,
	}
}
