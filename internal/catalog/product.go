package catalog

// Gender is the optional audience a product is cut for.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// StatusActive marks a published product that buyers can see.
const StatusActive = "active"

// Product is a published catalog entry. It maps to the hosted `products`
// table; JSON tags follow the camelCase convention used by the API.
type Product struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Colors    []string `json:"colors"`
	Sizes     []string `json:"sizes"`
	SellerID  string   `json:"sellerId"`
	Gender    *Gender  `json:"gender,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}
