package faculty

import (
	"context"
	"facultydesk/common"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathFaculty = "/v1/faculty"
)

// Reader is the read side of the directory served to the public pages.
type Reader interface {
	SearchDirectory(ctx context.Context, q Query) []Faculty
	Departments(ctx context.Context) []string
}

func RegisterFacultyRestAPI(r *gin.Engine, reader Reader, middleWares ...gin.HandlerFunc) {
	h := &facultyHandler{reader: reader}
	g := r.Group(PathFaculty, middleWares...)
	g.GET("", h.handleQueryFaculty)
	g.GET("departments", h.handleQueryDepartments)
}

type facultyHandler struct {
	reader Reader
}

func (h *facultyHandler) handleQueryFaculty(c *gin.Context) {
	q := Query{}
	if err := c.ShouldBindWith(&q, binding.Query); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	c.JSON(http.StatusOK, h.reader.SearchDirectory(c.Request.Context(), q))
}

func (h *facultyHandler) handleQueryDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.Departments(c.Request.Context()))
}
