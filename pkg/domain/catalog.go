package domain

// Workout is one entry from GET /workouts.
type Workout struct {
	ID          FlexString `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Difficulty  FlexString `json:"difficulty,omitempty"`
	Duration    FlexString `json:"duration,omitempty"`
	Description string     `json:"description,omitempty"`
	Exercises   []string   `json:"exercises,omitempty"`
}

// Recipe is one entry from GET /nutrition.
type Recipe struct {
	ID          FlexString `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	Calories    FlexString `json:"calories,omitempty"`
	PrepTime    FlexString `json:"prepTime,omitempty"`
	Macros      Macros     `json:"macros,omitempty"`
	Ingredients []string   `json:"ingredients"`
	Image       string     `json:"image,omitempty"`
}

// Product is one entry from GET /products.
type Product struct {
	ID       FlexString `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	Price    FlexString `json:"price"`
	Image    string     `json:"image,omitempty"`
	Features []string   `json:"features,omitempty"`
	Colors   []string   `json:"colors,omitempty"`
}

// DisplayPrice is the price as shown on a product card and stored in the cart.
func (p Product) DisplayPrice() string {
	return "$" + p.Price.String()
}

// CartItem is a line in the shopping cart. The same product may appear more than once.
type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// NewCartItem snapshots a product into a cart line.
func NewCartItem(p Product) CartItem {
	return CartItem{ID: p.ID.String(), Name: p.Name, Price: p.DisplayPrice()}
}
