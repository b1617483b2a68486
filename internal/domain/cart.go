package domain

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

// LineItem is one product entry in a cart. Name, UnitPrice and ImageURL are
// snapshotted from the catalog at add time; a later catalog edit does not
// change an open cart. DiscountPercent is carried as data only and is not
// applied to totals.
type LineItem struct {
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	UnitPrice       int64  `json:"unitPrice"`
	ImageURL        string `json:"imageUrl"`
	Quantity        int    `json:"quantity"`
	DiscountPercent int    `json:"discountPercent"`
}

// PaymentState holds the payment input for the transaction being built.
// CashReceived is only meaningful when Method is cash.
type PaymentState struct {
	Method       PaymentMethod `json:"method"`
	CashReceived int64         `json:"cashReceived"`
}

// DefaultPaymentState is the reset value after a completed transaction.
func DefaultPaymentState() PaymentState {
	return PaymentState{Method: PaymentCash}
}

// Totals are derived from the cart and payment input, never stored.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
	Change   int64 `json:"change"`
}

type CheckoutState string

const (
	StateIdle             CheckoutState = "idle"
	StatePaymentSelection CheckoutState = "paymentSelection"
	StateConfirmed        CheckoutState = "confirmed"
)
