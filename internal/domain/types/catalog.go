package types

// Region is a named area restaurants are grouped under.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category is a kind of cuisine.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
