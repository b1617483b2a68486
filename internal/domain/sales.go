package domain

// SalesPoint is one bar of the weekly sales chart.
type SalesPoint struct {
	Name  string `json:"name"`
	Sales int64  `json:"sales"`
}

// SalesReportRow is one day of the sales report table.
type SalesReportRow struct {
	Date         string `json:"date"`
	Transactions int    `json:"transactions"`
	Revenue      int64  `json:"revenue"`
	Profit       int64  `json:"profit"`
}

// DashboardStats backs the stat cards on the dashboard panel.
type DashboardStats struct {
	TodaySales         int64        `json:"todaySales"`
	TodaySalesChange   string       `json:"todaySalesChange"`
	Transactions       int          `json:"transactions"`
	TransactionsChange string       `json:"transactionsChange"`
	NewCustomers       int          `json:"newCustomers"`
	NewCustomersChange string       `json:"newCustomersChange"`
	BestSellingProduct string       `json:"bestSellingProduct"`
	RunnerUpProduct    string       `json:"runnerUpProduct"`
	CriticalStock      []StockAlert `json:"criticalStock"`
}

// StockAlert is a low-stock warning line on the dashboard.
type StockAlert struct {
	ProductName string `json:"productName"`
	Remaining   string `json:"remaining"`
}

// StoreProfile holds the store information form on the settings panel.
type StoreProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// User is an account row in settings user management.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
