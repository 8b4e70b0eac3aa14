package domain

import "time"

// User models an employee account of a client. ClientID is nil for accounts
// not attached to any client (typically administrators).
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	Age          int
	Fullname     string
	ClientID     *int64

	// Client is the owning client when the lookup loaded it.
	Client *Client
}

// Roles returns the role strings granted to u. ROLE_USER is always present.
func (u *User) Roles() []string {
	return u.Role.Effective().Bundle()
}

// BelongsTo reports whether u is attached to the given client.
func (u *User) BelongsTo(clientID int64) bool {
	return u.ClientID != nil && *u.ClientID == clientID
}

// UserPatch is the update surface of a user: only fullname and age are
// mutable after creation.
type UserPatch struct {
	Fullname *string
	Age      *int
}

// Apply copies the present fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Fullname != nil {
		u.Fullname = *p.Fullname
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
}
