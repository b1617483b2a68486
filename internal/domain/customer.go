package domain

// Customer is a loyalty record shown on the customers panel.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	MemberSince string `json:"memberSince"`
	TotalSpent  int64  `json:"totalSpent"`
}
