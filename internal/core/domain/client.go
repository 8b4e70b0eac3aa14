package domain

// Client is a customer company. Users hold the back-reference; Users is only
// populated by detail lookups.
type Client struct {
	ID      int64
	Name    string
	Address string
	Users   []User
}

// ClientPatch carries the fields of a partial update. Nil fields are left
// untouched.
type ClientPatch struct {
	Name    *string
	Address *string
}

// Apply copies the present fields onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}
