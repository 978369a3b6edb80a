package faculty_test

import (
	"context"
	"facultydesk/bizerror"
	"facultydesk/common"
	"facultydesk/domain/contribution"
	"facultydesk/domain/faculty"
	"facultydesk/domain/review"
	"facultydesk/testinfra"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

type readerStub struct {
	query   faculty.Query
	records []faculty.Faculty
}

func (s *readerStub) SearchDirectory(ctx context.Context, q faculty.Query) []faculty.Faculty {
	s.query = q
	return s.records
}

func (s *readerStub) Departments(ctx context.Context) []string {
	return []string{"Physics", "Electronics"}
}

func TestQueryFacultyAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	stub := &readerStub{records: []faculty.Faculty{{ID: 100, Name: "Dr. A", Cabin: "A-1", Department: "Physics", ContributedBy: "KLEF"}}}
	faculty.RegisterFacultyRestAPI(router, stub)

	t.Run("should pass query parameters to the directory", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, faculty.PathFaculty+"?q=dr&department=Physics", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[{"id":"100","name":"Dr. A","cabin":"A-1","department":"Physics","contributedBy":"KLEF"}]`))
		Expect(stub.query).To(Equal(faculty.Query{Term: "dr", Department: "Physics"}))
	})

	t.Run("should list departments", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, faculty.PathFaculty+"/departments", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["Physics","Electronics"]`))
	})

	t.Run("should serve the directory through the coordinator", func(t *testing.T) {
		r := gin.Default()
		dir := faculty.NewStore(common.NewIdWorker(1), faculty.DefaultSeed)
		faculty.RegisterFacultyRestAPI(r, review.NewCoordinator(dir, contribution.NewQueue(common.NewIdWorker(2), nil)))
		req := httptest.NewRequest(http.MethodGet, faculty.PathFaculty+"?q=ravi", nil)
		status, body, _ := testinfra.ExecuteRequest(req, r)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"name":"Dr. Ravi Teja"`))
	})
}
