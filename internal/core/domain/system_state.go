package domain

import "github.com/shopspring/decimal"

func init() {
	// The mirror endpoint stores amounts as plain JSON numbers; quoted
	// decimals would not round-trip against blobs written by other clients.
	decimal.MarshalJSONWithoutQuotes = true
}

// SystemState is the root aggregate: the full application state that is
// persisted locally as a single JSON blob and mirrored remotely as-is.
type SystemState struct {
	Users       []User `json:"users"`
	GlobalTheme string `json:"globalTheme,omitempty"`
}

// DefaultSystemState builds the seeded initial state used whenever no
// persisted blob exists yet (or the persisted one cannot be parsed).
// There is deliberately no package-level state: every caller gets a fresh value.
func DefaultSystemState() SystemState {
	return SystemState{
		Users: []User{
			{
				ID:       "talal-admin",
				Username: "talal",
				Password: "00966",
				Role:     RoleAdmin,
				Name:     "طلال المندوب",
				DB:       NewLedger(),
			},
		},
	}
}

// Valid reports whether the state is usable: a well-formed blob must carry at
// least one user. Payloads failing this are treated as absent/malformed.
func (s SystemState) Valid() bool {
	return len(s.Users) > 0
}

// FindUserByID returns the index of the user with the given ID, or -1.
func (s SystemState) FindUserByID(id string) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUserByCredentials returns the index of the first user matching the
// exact, case-sensitive username/password pair, or -1.
func (s SystemState) FindUserByCredentials(username, password string) int {
	for i := range s.Users {
		if s.Users[i].Username == username && s.Users[i].Password == password {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state.
func (s SystemState) Clone() SystemState {
	out := s
	out.Users = make([]User, len(s.Users))
	for i, u := range s.Users {
		out.Users[i] = u.Clone()
	}
	return out
}
