package gym

import (
	"regexp"
	"slices"

	"github.com/dmitrymomot/gymkit/pkg/validator"
)

// Field names reported in validation errors.
const (
	FieldID                = "clientId"
	FieldName              = "clientName"
	FieldAddress           = "address"
	FieldContactInfo       = "contactInfo"
	FieldMembershipDetails = "membershipDetails"
	FieldAssignedTrainer   = "assignedTrainer"
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z ]+$`)
	contactPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// ClientBuilder stages field values for a Client and records a validation
// error for every value that fails its checks. Setters never fail; Build
// reports everything at once.
//
// A ClientBuilder must not be used from multiple goroutines without external
// synchronization.
type ClientBuilder struct {
	id                int
	name              string
	address           string
	contactInfo       string
	membershipDetails string
	trainer           *Trainer

	errs validator.ValidationErrors
}

// NewClientBuilder returns an empty builder with no recorded errors.
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{}
}

// BuilderFrom stages every field of c on a new builder, so a record that came
// from external data can be validated.
func BuilderFrom(c Client) *ClientBuilder {
	return NewClientBuilder().
		SetID(c.id).
		SetName(c.name).
		SetAddress(c.address).
		SetContactInfo(c.contactInfo).
		SetMembershipDetails(c.membershipDetails).
		SetAssignedTrainer(c.trainer)
}

// check records the first failing rule, if any.
func (b *ClientBuilder) check(rules ...validator.Rule) {
	if verr, failed := validator.FirstFailure(rules...); failed {
		b.errs.Add(verr)
	}
}

// SetID requires an id greater than zero.
func (b *ClientBuilder) SetID(id int) *ClientBuilder {
	b.check(validator.Positive(FieldID, id))
	b.id = id
	return b
}

// SetName requires a non-blank value made of ASCII letters and spaces only.
// The pattern is not checked for blank values. Blank means empty after
// trimming code points up to U+0020, as for every field below.
func (b *ClientBuilder) SetName(name string) *ClientBuilder {
	b.check(
		validator.RequiredString(FieldName, name),
		validator.MatchesPattern(FieldName, name, namePattern, "letters and spaces"),
	)
	b.name = name
	return b
}

// SetAddress requires a non-blank address.
func (b *ClientBuilder) SetAddress(address string) *ClientBuilder {
	b.check(validator.RequiredString(FieldAddress, address))
	b.address = address
	return b
}

// SetContactInfo requires a phone number formatted as 123-456-7890.
func (b *ClientBuilder) SetContactInfo(contactInfo string) *ClientBuilder {
	b.check(
		validator.RequiredString(FieldContactInfo, contactInfo),
		validator.MatchesPattern(FieldContactInfo, contactInfo, contactPattern, "123-456-7890"),
	)
	b.contactInfo = contactInfo
	return b
}

// SetMembershipDetails requires non-blank membership details.
func (b *ClientBuilder) SetMembershipDetails(details string) *ClientBuilder {
	b.check(validator.RequiredString(FieldMembershipDetails, details))
	b.membershipDetails = details
	return b
}

// SetAssignedTrainer stores a copy of t. A nil trainer is recorded as missing.
func (b *ClientBuilder) SetAssignedTrainer(t *Trainer) *ClientBuilder {
	b.check(validator.RequiredPtr(FieldAssignedTrainer, t))
	b.trainer = cloneTrainer(t)
	return b
}

// Errors returns a copy of the validation errors recorded so far.
func (b *ClientBuilder) Errors() validator.ValidationErrors {
	return slices.Clone(b.errs)
}

// Build returns the staged Client, or a validator.ValidationErrors holding
// every recorded failure. Build leaves the builder untouched, so calling it
// again with the same state gives the same result.
func (b *ClientBuilder) Build() (Client, error) {
	if !b.errs.IsEmpty() {
		return Client{}, b.Errors()
	}

	return Client{
		id:                b.id,
		name:              b.name,
		address:           b.address,
		contactInfo:       b.contactInfo,
		membershipDetails: b.membershipDetails,
		trainer:           cloneTrainer(b.trainer),
	}, nil
}
