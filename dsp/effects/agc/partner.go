package agc

// authority selects whose gain dynamics a channel follows.
type authority uint8

const (
	authoritySelf authority = iota
	authorityPartner
)

// SetAsPartners links a and b. Neither channel changes its authority; call
// SetPartneredMode on the follower. Previous links of either channel are
// dropped. Linking a channel with itself only drops its previous link.
func SetAsPartners(a, b *Channel) {
	a.unlink()
	b.unlink()

	if a == b {
		return
	}

	a.partner = b
	b.partner = a
}

// SetPartneredMode makes the channel follow its partner's gain (enabled)
// or its own. Without a partner the channel stays its own authority.
func (c *Channel) SetPartneredMode(enabled bool) {
	if enabled && c.partner != nil {
		c.authority = authorityPartner
		return
	}

	c.authority = authoritySelf
}

// Partner returns the linked channel or nil.
func (c *Channel) Partner() *Channel { return c.partner }

// IsAuthority reports whether the channel computes its own gain.
func (c *Channel) IsAuthority() bool {
	return c.authority == authoritySelf || c.partner == nil
}

func (c *Channel) authorityChannel() *Channel {
	if c.IsAuthority() {
		return c
	}

	return c.partner
}

// combinesPartner reports whether the partner defers to this channel, in
// which case stage 2 follows the average of both inputs.
func (c *Channel) combinesPartner() bool {
	p := c.partner
	return p != nil && p.partner == c && !p.IsAuthority()
}

func (c *Channel) unlink() {
	if p := c.partner; p != nil && p.partner == c {
		p.partner = nil
		p.authority = authoritySelf
	}

	c.partner = nil
	c.authority = authoritySelf
}
