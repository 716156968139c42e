package domain

// Document is the whole record store: five collections persisted together
// as a single JSON file. There is no relational integrity beyond the
// existence checks the services perform at request time.
type Document struct {
	Users       []User         `json:"users"`
	Challenges  []Challenge    `json:"challenges"`
	Invitations []Invitation   `json:"invitations"`
	Penalties   []PenaltyEvent `json:"penalties"`
	Charities   []Charity      `json:"charities"`
}

// DefaultDocument is the document an empty or unreadable store resolves to:
// no records plus the two seeded charities.
func DefaultDocument() *Document {
	return &Document{
		Users:       []User{},
		Challenges:  []Challenge{},
		Invitations: []Invitation{},
		Penalties:   []PenaltyEvent{},
		Charities: []Charity{
			{ID: "charity1", Name: "Mahak", Link: "https://mahak-charity.org/online-payment/"},
			{ID: "charity2", Name: "Kahrizak", Link: "https://kahrizakcharity.com/"},
		},
	}
}

// FindUser returns the user with the given id, or nil.
func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByEmail matches the stored email exactly, case-sensitive.
func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

// FindChallenge returns the challenge with the given id, or nil.
func (d *Document) FindChallenge(id string) *Challenge {
	for i := range d.Challenges {
		if d.Challenges[i].ID == id {
			return &d.Challenges[i]
		}
	}
	return nil
}
