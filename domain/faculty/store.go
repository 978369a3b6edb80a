package faculty

import (
	"facultydesk/common"
	"strings"
	"sync"

	"github.com/sony/sonyflake"
)

// Store holds the directory. Every read hands out a copy of the records.
type Store struct {
	mu       sync.RWMutex
	records  []Faculty
	idWorker *sonyflake.Sonyflake
}

func NewStore(idWorker *sonyflake.Sonyflake, seed []Entry) *Store {
	s := &Store{idWorker: idWorker, records: []Faculty{}}
	s.Import(seed)
	return s
}

func (s *Store) List() []Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Faculty{}, s.records...)
}

// Import appends every entry as a new record with the seed attribution.
// Names are never matched against existing records, so duplicates are kept.
func (s *Store) Import(entries []Entry) []Faculty {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]Faculty, 0, len(entries))
	for _, e := range entries {
		f := Faculty{
			ID:            common.NextId(s.idWorker),
			Name:          e.Name,
			Cabin:         e.Cabin,
			Department:    e.Department,
			ContributedBy: SeedAttribution,
		}
		s.records = append(s.records, f)
		created = append(created, f)
	}
	return created
}

// ApplyApprovalMerge updates the record whose name equals m.Name ignoring case, or appends a new one.
// The matched record keeps its id and stored name.
func (s *Store) ApplyApprovalMerge(m Merge) Faculty {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if strings.EqualFold(s.records[i].Name, m.Name) {
			s.records[i].Cabin = m.Cabin
			s.records[i].Department = m.Department
			s.records[i].ContributedBy = m.ContributedBy
			return s.records[i]
		}
	}

	f := Faculty{
		ID:            common.NextId(s.idWorker),
		Name:          m.Name,
		Cabin:         m.Cabin,
		Department:    m.Department,
		ContributedBy: m.ContributedBy,
	}
	s.records = append(s.records, f)
	return f
}

// Search matches q.Term as a case-insensitive substring of name, cabin or department,
// and q.Department exactly. Empty criteria match everything.
func (s *Store) Search(q Query) []Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(q.Term))
	r := []Faculty{}
	for _, f := range s.records {
		if q.Department != "" && f.Department != q.Department {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(f.Name), term) &&
			!strings.Contains(strings.ToLower(f.Cabin), term) &&
			!strings.Contains(strings.ToLower(f.Department), term) {
			continue
		}
		r = append(r, f)
	}
	return r
}

// Departments lists distinct non-empty departments in first-seen order.
func (s *Store) Departments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	r := []string{}
	for _, f := range s.records {
		if f.Department == "" || seen[f.Department] {
			continue
		}
		seen[f.Department] = true
		r = append(r, f.Department)
	}
	return r
}
