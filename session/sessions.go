package session

import (
	"crypto/subtle"
	"facultydesk/bizerror"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const DefaultTokenExpiration = 24 * time.Hour

const KeySecCtx = "SecCtx"
const KeySecToken = "sec_token"

type Settings struct {
	AdminUsername string
	AdminPassword string

	TokenExpiration time.Duration
	// LoginRate is the sustained number of login attempts allowed per second, zero disables throttling.
	LoginRate  float64
	LoginBurst int
}

// Manager issues admin sessions against a single shared credential.
type Manager struct {
	settings Settings
	tokens   *cache.Cache
	limiter  *rate.Limiter
}

func NewManager(s Settings) *Manager {
	if s.TokenExpiration <= 0 {
		s.TokenExpiration = DefaultTokenExpiration
	}
	if s.LoginBurst <= 0 {
		s.LoginBurst = 1
	}
	limit := rate.Inf
	if s.LoginRate > 0 {
		limit = rate.Limit(s.LoginRate)
	}
	return &Manager{
		settings: s,
		tokens:   cache.New(s.TokenExpiration, 1*time.Minute),
		limiter:  rate.NewLimiter(limit, s.LoginBurst),
	}
}

// Authenticate reports whether the credentials match the configured admin account.
// An unset password never authenticates.
func (m *Manager) Authenticate(username, password string) bool {
	if m.settings.AdminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.settings.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.settings.AdminPassword)) == 1
	return userOK && passOK
}

func (m *Manager) Login(username, password string) (*Session, error) {
	if !m.limiter.Allow() {
		return nil, bizerror.ErrTooManyRequests
	}
	if !m.Authenticate(username, password) {
		return nil, bizerror.ErrInvalidCredentials
	}

	s := Session{
		Token:       uuid.New().String(),
		Identity:    Identity{Name: username, IsAdmin: true},
		SigningTime: time.Now(),
	}
	m.tokens.Set(s.Token, &s, cache.DefaultExpiration)
	return &s, nil
}

func (m *Manager) Logout(token string) {
	m.tokens.Delete(token)
}

func (m *Manager) Find(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	v, found := m.tokens.Get(token)
	if !found {
		return nil, false
	}
	s, ok := v.(*Session)
	if !ok {
		return nil, false
	}
	return s, true
}

// AdminFilter is the admin gate: it accepts the session cookie or a bearer token.
func (m *Manager) AdminFilter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, found := m.Find(extractToken(ctx))
		if !found || !s.Identity.IsAdmin {
			panic(bizerror.ErrUnauthenticated)
		}
		InjectSessionIntoGinContext(ctx, s)
		ctx.Next()
	}
}

func InjectSessionIntoGinContext(ctx *gin.Context, s *Session) {
	if s != nil && s.Token != "" {
		ctx.Set(KeySecCtx, s)
	}
}

func FindSession(ctx *gin.Context) *Session {
	value, found := ctx.Get(KeySecCtx)
	if !found {
		return nil
	}
	s, ok := value.(*Session)
	if !ok || s.Token == "" {
		return nil
	}
	return s
}

func extractToken(ctx *gin.Context) string {
	if token, err := ctx.Cookie(KeySecToken); err == nil && token != "" {
		return token
	}
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
