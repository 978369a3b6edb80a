package contribution

import (
	"errors"
	"facultydesk/common"
	"facultydesk/domain/state"
	"sync"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

var ErrInvalidStatus = errors.New("invalid status")

type Clock func() types.Timestamp

// Queue holds contributions most recent first. Unknown ids are reported through the bool
// results and never treated as failures.
type Queue struct {
	mu        sync.RWMutex
	records   []Contribution
	idWorker  *sonyflake.Sonyflake
	now       Clock
	lifecycle state.StateMachineTraits
}

func NewQueue(idWorker *sonyflake.Sonyflake, now Clock) *Queue {
	if now == nil {
		now = types.CurrentTimestamp
	}
	return &Queue{idWorker: idWorker, now: now, lifecycle: StateMachine, records: []Contribution{}}
}

func (q *Queue) Submit(s Submission) Contribution {
	q.mu.Lock()
	defer q.mu.Unlock()

	c := Contribution{
		ID:          common.NextId(q.idWorker),
		StudentID:   s.StudentID,
		StudentName: s.StudentName,
		FacultyName: s.FacultyName,
		Cabin:       s.Cabin,
		Department:  s.Department,
		Status:      StatusPending,
		SubmittedAt: q.now(),
		Unseen:      true,
	}
	q.records = append([]Contribution{c}, q.records...)
	return c
}

func (q *Queue) Find(id types.ID) (Contribution, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if i := q.indexOf(id); i >= 0 {
		return q.records[i], true
	}
	return Contribution{}, false
}

func (q *Queue) List() []Contribution {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]Contribution{}, q.records...)
}

func (q *Queue) MarkSeen(id types.ID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false
	}
	q.records[i].Unseen = false
	return true
}

// SetStatus moves a pending contribution to approved or rejected and clears the unseen flag.
// A contribution already approved or rejected keeps its status.
func (q *Queue) SetStatus(id types.ID, status Status) (bool, error) {
	if _, known := q.lifecycle.FindState(string(status)); !known || !q.lifecycle.IsTerminal(string(status)) {
		return false, ErrInvalidStatus
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if len(q.lifecycle.AvailableTransitions(string(q.records[i].Status), string(status))) == 1 {
		q.records[i].Status = status
	}
	q.records[i].Unseen = false
	return true, nil
}

// Edit overwrites the patched fields and clears the unseen flag.
func (q *Queue) Edit(id types.ID, p Patch) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false
	}
	if p.FacultyName != nil {
		q.records[i].FacultyName = *p.FacultyName
	}
	if p.Cabin != nil {
		q.records[i].Cabin = *p.Cabin
	}
	if p.Department != nil {
		q.records[i].Department = *p.Department
	}
	q.records[i].Unseen = false
	return true
}

func (q *Queue) Stats() Stats {
	q.mu.RLock()
	defer q.mu.RUnlock()

	s := Stats{}
	for _, c := range q.records {
		switch c.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		}
		if c.Unseen {
			s.Unseen++
		}
	}
	return s
}

func (q *Queue) indexOf(id types.ID) int {
	for i := range q.records {
		if q.records[i].ID == id {
			return i
		}
	}
	return -1
}
