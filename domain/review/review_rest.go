package review

import (
	"errors"
	"facultydesk/common"
	"facultydesk/domain/contribution"
	"facultydesk/domain/faculty"
	"facultydesk/importer"
	"net/http"
	"strings"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	PathContributions = "/v1/contributions"
	PathFacultyImport = "/v1/faculty/imports"
)

// SubmissionRequest is the public contribution form.
type SubmissionRequest struct {
	StudentID   string `json:"studentId" validate:"required,len=10,number"`
	StudentName string `json:"studentName" validate:"required,min=2"`
	FacultyName string `json:"facultyName" validate:"required,min=2"`
	Cabin       string `json:"cabin" validate:"required"`
	Department  string `json:"department" validate:"required"`
}

// Normalize trims every field and upper-cases the cabin.
func (r SubmissionRequest) Normalize() contribution.Submission {
	return contribution.Submission{
		StudentID:   strings.TrimSpace(r.StudentID),
		StudentName: strings.TrimSpace(r.StudentName),
		FacultyName: strings.TrimSpace(r.FacultyName),
		Cabin:       strings.ToUpper(strings.TrimSpace(r.Cabin)),
		Department:  strings.TrimSpace(r.Department),
	}
}

type ImportResult struct {
	Imported int               `json:"imported"`
	Dropped  int               `json:"dropped"`
	Records  []faculty.Faculty `json:"records"`
}

// RegisterReviewRestAPI registers the public submission endpoint and the admin endpoints,
// adminFilters guard everything except the submission.
func RegisterReviewRestAPI(r *gin.Engine, coordinator CoordinatorTraits, adminFilters ...gin.HandlerFunc) {
	h := &reviewHandler{coordinator: coordinator, validator: validator.New()}

	r.POST(PathContributions, h.handleSubmit)

	g := r.Group(PathContributions, adminFilters...)
	g.GET("", h.handleQueryContributions)
	g.GET("stats", h.handleStats)
	g.PATCH(":id", h.handleEdit)
	g.POST(":id/approve", h.handleApprove)
	g.POST(":id/reject", h.handleReject)
	g.POST(":id/seen", h.handleMarkSeen)

	imports := r.Group(PathFacultyImport, adminFilters...)
	imports.POST("", h.handleImportRows)
	imports.POST("csv", h.handleImportCSV)
}

type reviewHandler struct {
	coordinator CoordinatorTraits
	validator   *validator.Validate
}

func (h *reviewHandler) handleSubmit(c *gin.Context) {
	req := SubmissionRequest{}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	s := req.Normalize()
	normalized := SubmissionRequest(s)
	if err := h.validator.Struct(normalized); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}

	record := h.coordinator.Submit(c.Request.Context(), s)
	c.JSON(http.StatusCreated, gin.H{"id": record.ID.String()})
}

func (h *reviewHandler) handleQueryContributions(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.Contributions(c.Request.Context()))
}

func (h *reviewHandler) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.Stats(c.Request.Context()))
}

func (h *reviewHandler) handleEdit(c *gin.Context) {
	id := bindingPathID(c)
	p := contribution.Patch{}
	if err := c.ShouldBindBodyWith(&p, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	c.JSON(http.StatusOK, h.coordinator.Edit(c.Request.Context(), id, p))
}

func (h *reviewHandler) handleApprove(c *gin.Context) {
	id := bindingPathID(c)
	outcome, err := h.coordinator.Approve(c.Request.Context(), id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *reviewHandler) handleReject(c *gin.Context) {
	id := bindingPathID(c)
	outcome, err := h.coordinator.Reject(c.Request.Context(), id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *reviewHandler) handleMarkSeen(c *gin.Context) {
	id := bindingPathID(c)
	c.JSON(http.StatusOK, h.coordinator.MarkSeen(c.Request.Context(), id))
}

func (h *reviewHandler) handleImportRows(c *gin.Context) {
	rows := []importer.Row{}
	if err := c.ShouldBindBodyWith(&rows, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	h.importRows(c, rows)
}

func (h *reviewHandler) handleImportCSV(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	file, err := header.Open()
	if err != nil {
		panic(err)
	}
	defer file.Close()

	rows, err := importer.ReadCSV(file)
	if err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	h.importRows(c, rows)
}

func (h *reviewHandler) importRows(c *gin.Context, rows []importer.Row) {
	mapped := importer.MapRows(rows)
	created := h.coordinator.ImportBatch(c.Request.Context(), mapped.Entries)
	c.JSON(http.StatusOK, &ImportResult{Imported: len(created), Dropped: mapped.Dropped, Records: created})
}

func bindingPathID(c *gin.Context) types.ID {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&common.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return id
}
