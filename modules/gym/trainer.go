package gym

import "fmt"

// Trainer is a gym trainer as provided by the trainer-management side of the
// application. It is taken as-is and not validated here.
type Trainer struct {
	ID             int    `json:"trainerId" yaml:"trainerId"`
	Name           string `json:"trainerName" yaml:"trainerName"`
	Specialization string `json:"specialization,omitempty" yaml:"specialization,omitempty"`
}

func (t Trainer) String() string {
	return fmt.Sprintf("Trainer{ID:%d Name:%q Specialization:%q}", t.ID, t.Name, t.Specialization)
}
