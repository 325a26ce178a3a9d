package models

// CartLine is what the cart store persists: at most one line per product.
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CartItem is the enriched view returned by GET /api/cart, with live
// catalog data attached.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	Image     string `json:"image"`
}
