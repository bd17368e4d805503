package users

// User is the authoritative account record. Balance is mutated only by
// bet placement (debit) and settlement to won (credit).
type User struct {
	Username string  `json:"username"`
	Password string  `json:"password"` // bcrypt hash
	Socials  string  `json:"socials,omitempty"`
	Balance  float64 `json:"balance"`

	// Ordered bet ids, placement order.
	BetHistory []string `json:"betHistory"`
}

// Profile is the user shape returned to clients, without the hash.
type Profile struct {
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
	Socials  string  `json:"socials,omitempty"`
}

func (u *User) Profile() Profile {
	return Profile{Username: u.Username, Balance: u.Balance, Socials: u.Socials}
}

// Find returns the index of username in records, or -1.
func Find(records []User, username string) int {
	for i := range records {
		if records[i].Username == username {
			return i
		}
	}
	return -1
}
