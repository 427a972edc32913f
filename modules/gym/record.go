package gym

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// clientRecord is the wire shape of a Client.
type clientRecord struct {
	ID                int      `json:"clientId" yaml:"clientId"`
	Name              string   `json:"clientName" yaml:"clientName"`
	Address           string   `json:"address" yaml:"address"`
	ContactInfo       string   `json:"contactInfo" yaml:"contactInfo"`
	MembershipDetails string   `json:"membershipDetails" yaml:"membershipDetails"`
	AssignedTrainer   *Trainer `json:"assignedTrainer" yaml:"assignedTrainer"`
}

// recordKeys lists the top-level keys a client record understands.
var recordKeys = map[string]struct{}{
	"clientId":          {},
	"clientName":        {},
	"address":           {},
	"contactInfo":       {},
	"membershipDetails": {},
	"assignedTrainer":   {},
}

func (c Client) record() clientRecord {
	return clientRecord{
		ID:                c.id,
		Name:              c.name,
		Address:           c.address,
		ContactInfo:       c.contactInfo,
		MembershipDetails: c.membershipDetails,
		AssignedTrainer:   cloneTrainer(c.trainer),
	}
}

func (r clientRecord) client() Client {
	return Client{
		id:                r.ID,
		name:              r.Name,
		address:           r.Address,
		contactInfo:       r.ContactInfo,
		membershipDetails: r.MembershipDetails,
		trainer:           r.AssignedTrainer,
	}
}

func (c Client) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.record())
}

// UnmarshalJSON replaces c with the decoded record. Missing fields keep their
// empty values and unknown fields are ignored. No validation is performed.
func (c *Client) UnmarshalJSON(data []byte) error {
	var r clientRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*c = r.client()
	return nil
}

func (c Client) MarshalYAML() (any, error) {
	return c.record(), nil
}

// UnmarshalYAML follows the same lenient rules as UnmarshalJSON.
func (c *Client) UnmarshalYAML(node *yaml.Node) error {
	var r clientRecord
	if err := node.Decode(&r); err != nil {
		return err
	}
	*c = r.client()
	return nil
}
