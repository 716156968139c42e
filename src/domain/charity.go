package domain

// Charity is a donation target for penalty payments. The collection is
// seeded static data and read-only through the API.
type Charity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}
