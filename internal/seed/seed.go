// Package seed provides the mock data loaded into the in-memory stores at
// startup. The storefront runs entirely on this data; nothing is persisted.
package seed

import "alanshor-pos/internal/domain"

func Products() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Susu UHT Coklat 1L", Category: "Minuman", Price: 18500, Stock: 150, ImageURL: "https://picsum.photos/seed/milk/100", Barcode: "899270110201"},
		{ID: "2", Name: "Roti Tawar Gandum", Category: "Roti", Price: 15000, Stock: 80, ImageURL: "https://picsum.photos/seed/bread/100", Barcode: "899270110202"},
		{ID: "3", Name: "Minyak Goreng 2L", Category: "Bahan Pokok", Price: 38000, Stock: 200, ImageURL: "https://picsum.photos/seed/oil/100", Barcode: "899270110203"},
		{ID: "4", Name: "Telur Ayam (per kg)", Category: "Bahan Pokok", Price: 25000, Stock: 50, ImageURL: "https://picsum.photos/seed/eggs/100", Barcode: "899270110204"},
		{ID: "5", Name: "Sabun Mandi Cair", Category: "Perawatan Diri", Price: 22000, Stock: 120, ImageURL: "https://picsum.photos/seed/soap/100", Barcode: "899270110205"},
		{ID: "6", Name: "Shampoo Anti Ketombe", Category: "Perawatan Diri", Price: 31000, Stock: 95, ImageURL: "https://picsum.photos/seed/shampoo/100", Barcode: "899270110206"},
		{ID: "7", Name: "Mie Instan Goreng", Category: "Makanan Instan", Price: 3000, Stock: 500, ImageURL: "https://picsum.photos/seed/noodles/100", Barcode: "899270110207"},
		{ID: "8", Name: "Kopi Bubuk 250g", Category: "Minuman", Price: 23500, Stock: 70, ImageURL: "https://picsum.photos/seed/coffee/100", Barcode: "899270110208"},
		{ID: "9", Name: "Deterjen Bubuk 1kg", Category: "Kebersihan", Price: 29000, Stock: 110, ImageURL: "https://picsum.photos/seed/detergent/100", Barcode: "899270110209"},
		{ID: "10", Name: "Beras Premium 5kg", Category: "Bahan Pokok", Price: 68000, Stock: 180, ImageURL: "https://picsum.photos/seed/rice/100", Barcode: "899270110210"},
		{ID: "11", Name: "Gula Pasir 1kg", Category: "Bahan Pokok", Price: 14000, Stock: 300, ImageURL: "https://picsum.photos/seed/sugar/100", Barcode: "899270110211"},
		{ID: "12", Name: "Teh Celup Kotak", Category: "Minuman", Price: 9500, Stock: 250, ImageURL: "https://picsum.photos/seed/tea/100", Barcode: "899270110212"},
	}
}

func Customers() []domain.Customer {
	return []domain.Customer{
		{ID: "c1", Name: "Budi Santoso", Phone: "081234567890", Email: "budi.s@example.com", MemberSince: "2023-01-15", TotalSpent: 1575000},
		{ID: "c2", Name: "Citra Lestari", Phone: "081345678901", Email: "citra.l@example.com", MemberSince: "2023-02-20", TotalSpent: 2250000},
		{ID: "c3", Name: "Adi Nugroho", Phone: "081456789012", Email: "adi.n@example.com", MemberSince: "2023-03-10", TotalSpent: 850000},
		{ID: "c4", Name: "Dewi Anggraini", Phone: "081567890123", Email: "dewi.a@example.com", MemberSince: "2023-04-05", TotalSpent: 3120000},
		{ID: "c5", Name: "Eko Prasetyo", Phone: "081678901234", Email: "eko.p@example.com", MemberSince: "2023-05-18", TotalSpent: 980000},
		{ID: "c6", Name: "Fitriani", Phone: "081789012345", Email: "fitriani@example.com", MemberSince: "2023-06-22", TotalSpent: 1750000},
		{ID: "c7", Name: "Gatot Subroto", Phone: "081890123456", Email: "gatot.s@example.com", MemberSince: "2023-07-30", TotalSpent: 450000},
		{ID: "c8", Name: "Hesti Purwanti", Phone: "081901234567", Email: "hesti.p@example.com", MemberSince: "2023-08-11", TotalSpent: 2890000},
		{ID: "c9", Name: "Indra Gunawan", Phone: "082123456789", Email: "indra.g@example.com", MemberSince: "2023-09-02", TotalSpent: 1100000},
		{ID: "c10", Name: "Joko Widodo", Phone: "082234567890", Email: "joko.w@example.com", MemberSince: "2023-10-25", TotalSpent: 5300000},
	}
}

func WeeklySales() []domain.SalesPoint {
	return []domain.SalesPoint{
		{Name: "Senin", Sales: 4000000},
		{Name: "Selasa", Sales: 3000000},
		{Name: "Rabu", Sales: 5000000},
		{Name: "Kamis", Sales: 4500000},
		{Name: "Jumat", Sales: 7000000},
		{Name: "Sabtu", Sales: 8500000},
		{Name: "Minggu", Sales: 9000000},
	}
}

func DailyReports() []domain.SalesReportRow {
	return []domain.SalesReportRow{
		{Date: "2024-07-01", Transactions: 50, Revenue: 12500000, Profit: 3000000},
		{Date: "2024-07-02", Transactions: 45, Revenue: 11000000, Profit: 2500000},
		{Date: "2024-07-03", Transactions: 60, Revenue: 15000000, Profit: 4000000},
		{Date: "2024-07-04", Transactions: 55, Revenue: 13500000, Profit: 3500000},
		{Date: "2024-07-05", Transactions: 70, Revenue: 18000000, Profit: 5000000},
		{Date: "2024-07-06", Transactions: 80, Revenue: 21000000, Profit: 6500000},
		{Date: "2024-07-07", Transactions: 85, Revenue: 22500000, Profit: 7000000},
	}
}

func DashboardStats() domain.DashboardStats {
	return domain.DashboardStats{
		TodaySales:         12500000,
		TodaySalesChange:   "+5.2%",
		Transactions:       482,
		TransactionsChange: "+12",
		NewCustomers:       15,
		NewCustomersChange: "-2",
		BestSellingProduct: "Susu UHT",
		RunnerUpProduct:    "Mie Instan",
		CriticalStock: []domain.StockAlert{
			{ProductName: "Minyak Goreng 2L", Remaining: "5 Pcs"},
			{ProductName: "Telur Ayam (kg)", Remaining: "2 Kg"},
			{ProductName: "Roti Tawar", Remaining: "12 Pcs"},
		},
	}
}

func StoreProfile() domain.StoreProfile {
	return domain.StoreProfile{
		Name:    "AL ANSHOR PRICE",
		Address: "Jl. Raya Sejahtera No. 123, Jakarta",
		Phone:   "0812-3456-7890",
	}
}

func Users() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Admin", Username: "admin", Role: "Admin", Active: true},
		{ID: "u2", Name: "Kasir A", Username: "kasir.a", Role: "Kasir", Active: true},
		{ID: "u3", Name: "Kasir B", Username: "kasir.b", Role: "Kasir", Active: false},
	}
}
