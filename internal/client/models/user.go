// Package models defines client-side data models used by the investrack CLI.
package models

// UserCredential is a registered user as stored in the user directory.
// Entries are immutable after registration; there is no edit or delete.
//
// Password is stored and compared in plain text. This mirrors the behavior
// of the system being tracked and is NOT a secure design; see DESIGN.md.
type UserCredential struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionIdentity is the logged-in user: a name+email projection of a
// UserCredential, reconstructible from the store on its own. At most one
// exists at a time; its presence is the sole authorization signal.
type SessionIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectIdentity builds the SessionIdentity projection of a credential.
func ProjectIdentity(c UserCredential) SessionIdentity {
	return SessionIdentity{Name: c.Name, Email: c.Email}
}
