package session

import (
	"facultydesk/common"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathSessions = "/v1/sessions"
	PathSession  = "/v1/session"
)

func RegisterSessionRestAPI(r *gin.Engine, m *Manager) {
	h := &sessionHandler{manager: m}
	r.POST(PathSessions, h.handleLogin)
	r.DELETE(PathSessions, m.AdminFilter(), h.handleLogout)
	r.GET(PathSession, m.AdminFilter(), h.handleDetailSession)
}

type sessionHandler struct {
	manager *Manager
}

func (h *sessionHandler) handleLogin(c *gin.Context) {
	login := LoginRequest{}
	if err := c.ShouldBindBodyWith(&login, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	s, err := h.manager.Login(login.Name, login.Password)
	if err != nil {
		panic(err)
	}

	c.SetCookie(KeySecToken, s.Token, int(h.manager.settings.TokenExpiration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, s)
}

func (h *sessionHandler) handleLogout(c *gin.Context) {
	if s := FindSession(c); s != nil {
		h.manager.Logout(s.Token)
	}
	c.SetCookie(KeySecToken, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *sessionHandler) handleDetailSession(c *gin.Context) {
	c.JSON(http.StatusOK, FindSession(c))
}
