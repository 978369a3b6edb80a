package servehttp

import (
	"facultydesk/bizerror"
	"facultydesk/common"
	"facultydesk/domain/faculty"
	"facultydesk/domain/review"
	"facultydesk/infra/tracing"
	"facultydesk/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Components struct {
	Coordinator review.CoordinatorTraits
	Sessions    *session.Manager
}

// BuildEngine registers every REST API on a fresh engine. Admin routes sit behind the session filter.
func BuildEngine(c Components) *gin.Engine {
	engine := gin.Default()
	engine.Use(tracing.TracingIngress(), bizerror.ErrorHandling())

	engine.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, common.ServiceName)
	})

	faculty.RegisterFacultyRestAPI(engine, c.Coordinator)
	review.RegisterReviewRestAPI(engine, c.Coordinator, c.Sessions.AdminFilter())
	session.RegisterSessionRestAPI(engine, c.Sessions)
	return engine
}
