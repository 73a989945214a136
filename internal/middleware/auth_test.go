package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"olympus_backend/internal/model"
	"olympus_backend/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuth struct {
	tokens map[string]*util.Claims
}

func (f fakeAuth) Authenticate(ctx context.Context, token string) (*util.Claims, error) {
	if claims, ok := f.tokens[token]; ok {
		return claims, nil
	}
	return nil, util.AuthRequired()
}

type fakeRoles map[uint]model.UserRole

func (f fakeRoles) CurrentRole(userID uint) (model.UserRole, error) {
	role, ok := f[userID]
	if !ok {
		return "", util.AuthRequired()
	}
	return role, nil
}

func TestCheckRole(t *testing.T) {
	tests := []struct {
		role    model.UserRole
		allowed []model.UserRole
		ok      bool
	}{
		{role: model.Teacher, allowed: []model.UserRole{model.Teacher}, ok: true},
		{role: model.Admin, allowed: []model.UserRole{model.Teacher}, ok: true},
		{role: model.Student, allowed: []model.UserRole{model.Teacher}},
		{role: model.Teacher, allowed: []model.UserRole{model.Admin}},
		{role: model.Student, allowed: []model.UserRole{model.Student, model.Teacher}, ok: true},
	}
	for _, tt := range tests {
		err := CheckRole(tt.role, tt.allowed...)
		if tt.ok {
			assert.NoError(t, err, "%s in %v", tt.role, tt.allowed)
		} else {
			assert.ErrorIs(t, err, util.ErrForbidden, "%s in %v", tt.role, tt.allowed)
		}
	}
}

func TestCheckLogin(t *testing.T) {
	assert.ErrorIs(t, CheckLogin(nil), util.ErrAuthRequired)
	assert.NoError(t, CheckLogin(&util.Claims{}))
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	auth := fakeAuth{tokens: map[string]*util.Claims{
		"student-token": {Identity: model.Identity{ID: 1, Role: model.Student}},
		"teacher-token": {Identity: model.Identity{ID: 2, Role: model.Teacher}},
		// the session still says teacher, storage says student
		"demoted-token": {Identity: model.Identity{ID: 3, Role: model.Teacher}},
	}}
	roles := fakeRoles{1: model.Student, 2: model.Teacher, 3: model.Student}

	r := gin.New()
	echo := func(c *gin.Context) {
		identity := util.GetIdentityFromContext(c)
		if identity == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, string(identity.Role))
	}
	r.GET("/open", OptionalLogin(auth, "sid"), echo)
	r.GET("/private", RequireLogin(auth, "sid"), echo)
	r.GET("/teacher", RequireLogin(auth, "sid"), RequireRole(roles, model.Teacher), echo)
	return r
}

func TestAuthMiddlewares(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		path   string
		header string
		cookie string
		status int
		body   string
	}{
		{name: "anonymous open", path: "/open", status: http.StatusOK, body: "anonymous"},
		{name: "bad token open", path: "/open", header: "Bearer nope", status: http.StatusOK, body: "anonymous"},
		{name: "cookie open", path: "/open", cookie: "student-token", status: http.StatusOK, body: "student"},
		{name: "anonymous private", path: "/private", status: http.StatusUnauthorized},
		{name: "bearer private", path: "/private", header: "Bearer student-token", status: http.StatusOK, body: "student"},
		{name: "cookie private", path: "/private", cookie: "teacher-token", status: http.StatusOK, body: "teacher"},
		{name: "student teacher page", path: "/teacher", header: "Bearer student-token", status: http.StatusForbidden},
		{name: "teacher teacher page", path: "/teacher", header: "Bearer teacher-token", status: http.StatusOK, body: "teacher"},
		{name: "demoted teacher page", path: "/teacher", header: "Bearer demoted-token", status: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
