package marketplace

// Product is a catalog entry as returned by the marketplace API.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"` // FCFA
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category,omitempty"`
	Boutique    string   `json:"boutique,omitempty"`
	Stock       int      `json:"stock,omitempty"`
}

// ProductList is the paginated response of GET /products.
type ProductList struct {
	Data       []Product `json:"data"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// ListParams are the supported query parameters of GET /products.
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Boutique string
}

// OrderRequest is the body of POST /orders. The API accepts exactly one
// product per order.
type OrderRequest struct {
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerLocation string `json:"customerLocation"`
	Product          string `json:"product"`
	Quantity         int    `json:"quantity"`
}

// Order is the created order as returned by the API.
type Order struct {
	ID               string `json:"_id"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerLocation string `json:"customerLocation"`
	Product          string `json:"product"`
	Quantity         int    `json:"quantity"`
	Status           string `json:"status,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

// Review is a customer review ("avis") on a product.
type Review struct {
	ID        string `json:"_id"`
	Product   string `json:"product"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ReviewRequest is the body of POST /avis.
type ReviewRequest struct {
	Product string `json:"product"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
