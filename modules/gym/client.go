package gym

import (
	"fmt"
	"slices"
	"strings"
)

// Client is a validated gym member record. The zero value is the "empty"
// record produced by Empty.
type Client struct {
	id                int
	name              string
	address           string
	contactInfo       string
	membershipDetails string
	trainer           *Trainer
}

// Empty returns a record with id 0, empty strings and no trainer.
// No validation is performed.
func Empty() Client {
	return Client{}
}

// ID returns the client identifier.
func (c Client) ID() int { return c.id }

// Name returns the client's name.
func (c Client) Name() string { return c.name }

// Address returns the client's postal address.
func (c Client) Address() string { return c.address }

// ContactInfo returns the client's phone number.
func (c Client) ContactInfo() string { return c.contactInfo }

// MembershipDetails returns the client's membership description.
func (c Client) MembershipDetails() string { return c.membershipDetails }

// AssignedTrainer returns a copy of the assigned trainer and whether one is set.
func (c Client) AssignedTrainer() (Trainer, bool) {
	if c.trainer == nil {
		return Trainer{}, false
	}
	return *c.trainer, true
}

// Key returns the identity of the record, suitable as a map key.
func (c Client) Key() int {
	return c.id
}

// Equal reports whether both records have the same ID. Other fields are ignored.
func (c Client) Equal(other Client) bool {
	return c.id == other.id
}

// Compare orders records lexicographically by name.
func (c Client) Compare(other Client) int {
	return strings.Compare(c.name, other.name)
}

// CompareByName is Compare in a form usable with slices.SortFunc.
func CompareByName(a, b Client) int {
	return a.Compare(b)
}

// SortByName sorts clients by name, keeping the original order of equal names.
func SortByName(clients []Client) {
	slices.SortStableFunc(clients, CompareByName)
}

func (c Client) String() string {
	trainer := "<nil>"
	if c.trainer != nil {
		trainer = c.trainer.String()
	}
	return fmt.Sprintf(
		"Client{ID:%d Name:%q Address:%q ContactInfo:%q MembershipDetails:%q AssignedTrainer:%s}",
		c.id, c.name, c.address, c.contactInfo, c.membershipDetails, trainer,
	)
}

func cloneTrainer(t *Trainer) *Trainer {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
