package domain

// Product is a catalog entry. Price is in whole rupiah.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"`
	Barcode  string `json:"barcode"`
}
