package contribution

import (
	"facultydesk/domain/state"

	"github.com/fundwit/go-commons/types"
)

type Status string

const (
	StatusPending  = Status("pending")
	StatusApproved = Status("approved")
	StatusRejected = Status("rejected")
)

var (
	StatePending  = state.State{Name: string(StatusPending), Category: state.Initial}
	StateApproved = state.State{Name: string(StatusApproved), Category: state.Terminal}
	StateRejected = state.State{Name: string(StatusRejected), Category: state.Terminal}

	// StateMachine is the review lifecycle: pending moves once to approved or rejected.
	StateMachine = state.NewStateMachine(
		[]state.State{StatePending, StateApproved, StateRejected},
		[]state.Transition{
			{Name: "approve", From: StatePending, To: StateApproved},
			{Name: "reject", From: StatePending, To: StateRejected},
		})
)

type Contribution struct {
	ID types.ID `json:"id"`

	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`

	FacultyName string `json:"facultyName"`
	Cabin       string `json:"cabin"`
	Department  string `json:"department"`

	Status      Status          `json:"status"`
	SubmittedAt types.Timestamp `json:"submittedAt"`
	Unseen      bool            `json:"unseen"`
}

type Submission struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	FacultyName string `json:"facultyName"`
	Cabin       string `json:"cabin"`
	Department  string `json:"department"`
}

// Patch overwrites the proposed fields which are not nil.
type Patch struct {
	FacultyName *string `json:"facultyName"`
	Cabin       *string `json:"cabin"`
	Department  *string `json:"department"`
}

type Stats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Unseen   int `json:"unseen"`
}
