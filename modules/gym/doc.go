// Package gym models gym members ("clients") and the trainers assigned to them.
//
// A Client is an immutable value. There are two ways to obtain one, and they
// are deliberately kept apart:
//
//   - the validated path: stage fields on a ClientBuilder and call Build, which
//     either returns the Client or a validator.ValidationErrors listing every
//     failed field check in the order the setters were called;
//   - the external data path: Empty, or decoding JSON/YAML through Codec or the
//     encoding/json and gopkg.in/yaml.v3 packages. This path performs no
//     validation and silently ignores unknown fields.
//
// BuilderFrom moves a decoded record back onto the validated path.
//
//	c, err := gym.NewClientBuilder().
//	    SetID(7).
//	    SetName("Alice Smith").
//	    SetAddress("12 Elm St").
//	    SetContactInfo("555-123-4567").
//	    SetMembershipDetails("Gold").
//	    SetAssignedTrainer(&gym.Trainer{ID: 1, Name: "Sam"}).
//	    Build()
//
// Clients are equal when their IDs are equal and are ordered by name.
package gym
