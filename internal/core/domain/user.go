package domain

// UserRole labels a user's role. It is carried on the blob but the core
// performs no authorization checks against it.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleRep   UserRole = "rep"
)

// User represents one account of the application. Credentials are stored and
// compared in plaintext; this mirrors the existing deployment's data and is a
// known limitation, not an oversight (see DESIGN.md).
type User struct {
	ID       string   `json:"id"` // stable opaque key, never reused
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
	Name     string   `json:"name"`
	DB       Ledger   `json:"db"` // exclusively owned ledger, lives as long as the user
}

// Clone returns a deep copy of the user, including its ledger.
func (u User) Clone() User {
	out := u
	out.DB = u.DB.Clone()
	return out
}
