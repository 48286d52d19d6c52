package types

// Restaurant as served by the detail and list endpoints. List responses leave
// Reviews empty.
type Restaurant struct {
	ID          int64    `json:"id"`
	CategoryID  int64    `json:"categoryId"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Information string   `json:"information,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// Review left by a user on a restaurant.
type Review struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Score        int    `json:"score"`
}

// Reviews wraps a review listing.
type Reviews struct {
	Reviews []Review `json:"reviews"`
}

// RestaurantQuery filters the restaurant listing.
type RestaurantQuery struct {
	RegionName string
	CategoryID int64
}
