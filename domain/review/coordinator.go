package review

import (
	"context"
	"facultydesk/domain/contribution"
	"facultydesk/domain/faculty"
	"sync"

	"github.com/fundwit/go-commons/types"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Directory is the faculty directory the coordinator owns.
type Directory interface {
	List() []faculty.Faculty
	Search(q faculty.Query) []faculty.Faculty
	Departments() []string
	Import(entries []faculty.Entry) []faculty.Faculty
	ApplyApprovalMerge(m faculty.Merge) faculty.Faculty
}

type Queue interface {
	Submit(s contribution.Submission) contribution.Contribution
	Find(id types.ID) (contribution.Contribution, bool)
	List() []contribution.Contribution
	MarkSeen(id types.ID) bool
	SetStatus(id types.ID, status contribution.Status) (bool, error)
	Edit(id types.ID, p contribution.Patch) bool
	Stats() contribution.Stats
}

type CoordinatorTraits interface {
	faculty.Reader
	Directory(ctx context.Context) []faculty.Faculty

	Submit(ctx context.Context, s contribution.Submission) contribution.Contribution
	Approve(ctx context.Context, id types.ID) (Outcome, error)
	Reject(ctx context.Context, id types.ID) (Outcome, error)
	Edit(ctx context.Context, id types.ID, p contribution.Patch) Outcome
	MarkSeen(ctx context.Context, id types.ID) Outcome
	ImportBatch(ctx context.Context, entries []faculty.Entry) []faculty.Faculty
	Contributions(ctx context.Context) []contribution.Contribution
	Stats(ctx context.Context) DashboardStats
}

// Outcome reports the effect of an admin action. Found is false when the id is unknown,
// in which case nothing changed.
type Outcome struct {
	Found        bool                       `json:"found"`
	Contribution *contribution.Contribution `json:"contribution,omitempty"`
	Merged       *faculty.Faculty           `json:"merged,omitempty"`
}

type DashboardStats struct {
	TotalFaculty int `json:"totalFaculty"`
	contribution.Stats
}

// Coordinator is the only writer of the directory and the queue. Writes are serialized, so an
// approval's merge and status change are observed together.
type Coordinator struct {
	mu        sync.RWMutex
	directory Directory
	queue     Queue
}

func NewCoordinator(directory Directory, queue Queue) *Coordinator {
	return &Coordinator{directory: directory, queue: queue}
}

func (c *Coordinator) Submit(ctx context.Context, s contribution.Submission) contribution.Contribution {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.submit")
	defer span.Finish()

	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.queue.Submit(s)
	span.SetTag("contribution.id", r.ID.String())
	logrus.WithFields(logrus.Fields{"contributionId": r.ID, "studentId": r.StudentID, "facultyName": r.FacultyName}).
		Info("contribution submitted")
	return r
}

// Approve merges a pending contribution into the directory and marks it approved.
// A contribution that already left pending is never merged a second time.
func (c *Coordinator) Approve(ctx context.Context, id types.ID) (Outcome, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.approve")
	defer span.Finish()
	span.SetTag("contribution.id", id.String())

	c.mu.Lock()
	defer c.mu.Unlock()

	r, found := c.queue.Find(id)
	if !found {
		logrus.WithField("contributionId", id).Debug("approve: contribution not found")
		return Outcome{}, nil
	}

	var merged *faculty.Faculty
	if len(contribution.StateMachine.AvailableTransitions(string(r.Status), string(contribution.StatusApproved))) == 1 {
		f := c.directory.ApplyApprovalMerge(faculty.Merge{
			Name:          r.FacultyName,
			Cabin:         r.Cabin,
			Department:    r.Department,
			ContributedBy: r.StudentName,
		})
		merged = &f
	}
	if _, err := c.queue.SetStatus(id, contribution.StatusApproved); err != nil {
		return Outcome{}, err
	}

	if merged != nil {
		logrus.WithFields(logrus.Fields{"contributionId": id, "facultyId": merged.ID, "facultyName": merged.Name}).
			Info("contribution approved and merged")
	} else {
		logrus.WithFields(logrus.Fields{"contributionId": id, "status": r.Status}).
			Info("approve: contribution already reviewed, directory untouched")
	}
	return c.outcome(id, merged), nil
}

func (c *Coordinator) Reject(ctx context.Context, id types.ID) (Outcome, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.reject")
	defer span.Finish()
	span.SetTag("contribution.id", id.String())

	c.mu.Lock()
	defer c.mu.Unlock()

	found, err := c.queue.SetStatus(id, contribution.StatusRejected)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		logrus.WithField("contributionId", id).Debug("reject: contribution not found")
		return Outcome{}, nil
	}
	logrus.WithField("contributionId", id).Info("contribution rejected")
	return c.outcome(id, nil), nil
}

// Edit changes the proposed fields only. A directory record merged earlier is not touched.
func (c *Coordinator) Edit(ctx context.Context, id types.ID, p contribution.Patch) Outcome {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.edit")
	defer span.Finish()
	span.SetTag("contribution.id", id.String())

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.queue.Edit(id, p) {
		logrus.WithField("contributionId", id).Debug("edit: contribution not found")
		return Outcome{}
	}
	logrus.WithField("contributionId", id).Info("contribution edited")
	return c.outcome(id, nil)
}

func (c *Coordinator) MarkSeen(ctx context.Context, id types.ID) Outcome {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.mark_seen")
	defer span.Finish()
	span.SetTag("contribution.id", id.String())

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.queue.MarkSeen(id) {
		return Outcome{}
	}
	return c.outcome(id, nil)
}

// ImportBatch appends entries to the directory without touching the queue.
func (c *Coordinator) ImportBatch(ctx context.Context, entries []faculty.Entry) []faculty.Faculty {
	span, _ := opentracing.StartSpanFromContext(ctx, "review.import_batch")
	defer span.Finish()
	span.SetTag("batch.size", len(entries))

	c.mu.Lock()
	defer c.mu.Unlock()

	created := c.directory.Import(entries)
	logrus.WithField("count", len(created)).Info("faculty batch imported")
	return created
}

func (c *Coordinator) Directory(ctx context.Context) []faculty.Faculty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.directory.List()
}

func (c *Coordinator) SearchDirectory(ctx context.Context, q faculty.Query) []faculty.Faculty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.directory.Search(q)
}

func (c *Coordinator) Departments(ctx context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.directory.Departments()
}

func (c *Coordinator) Contributions(ctx context.Context) []contribution.Contribution {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queue.List()
}

func (c *Coordinator) Stats(ctx context.Context) DashboardStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return DashboardStats{TotalFaculty: len(c.directory.List()), Stats: c.queue.Stats()}
}

func (c *Coordinator) outcome(id types.ID, merged *faculty.Faculty) Outcome {
	o := Outcome{Found: true, Merged: merged}
	if r, found := c.queue.Find(id); found {
		o.Contribution = &r
	}
	return o
}
