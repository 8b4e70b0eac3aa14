package domain

// Principal is the authenticated caller as carried by the bearer token.
type Principal struct {
	UserID   int64
	Email    string
	Role     Role
	ClientID *int64
}

// IsAdmin reports whether the caller holds ROLE_ADMIN.
func (p Principal) IsAdmin() bool {
	return p.Role.Grants(RoleAdmin)
}

// HasRole evaluates a role predicate against the caller's effective role.
func (p Principal) HasRole(required Role) bool {
	return p.Role.Effective().Grants(required)
}

// CanAccessClient: admins, or members of that client.
func (p Principal) CanAccessClient(clientID int64) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ClientID != nil && *p.ClientID == clientID
}

// CanAccessUser: admins, or callers affiliated with the same client as target.
// Two users without a client are not considered colleagues.
func (p Principal) CanAccessUser(target *User) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ClientID != nil && target.BelongsTo(*p.ClientID)
}

// CanDeleteUser adds the not-self rule to CanAccessUser. It applies to
// administrators too.
func (p Principal) CanDeleteUser(target *User) bool {
	return target.ID != p.UserID && p.CanAccessUser(target)
}
