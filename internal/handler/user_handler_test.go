package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/service"
)

type stubUserAdminStore struct {
	byID    map[string]*model.User
	deleted []string
}

func newStubUserAdminStore() *stubUserAdminStore {
	return &stubUserAdminStore{byID: map[string]*model.User{}}
}

func (s *stubUserAdminStore) GetByID(_ context.Context, id string) (*model.User, error) {
	return s.byID[id], nil
}

func (s *stubUserAdminStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return true, nil
}

func userRouter(store *stubUserAdminStore, claims *service.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(service.NewUserService(store))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ContextKeyClaims, claims)
		}
		c.Next()
	})
	r.GET("/users/:id", h.GetUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func TestGetUserAsOwner(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-1"] = &model.User{ID: "user-1", Email: "amina@example.com"}
	r := userRouter(store, &service.Claims{UserID: "user-1", Role: model.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "amina@example.com")
}

func TestGetUserForbiddenForOtherUser(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-2"] = &model.User{ID: "user-2"}
	r := userRouter(store, &service.Claims{UserID: "user-1", Role: model.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-2", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserAdminSeesAnyone(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-2"] = &model.User{ID: "user-2"}
	r := userRouter(store, &service.Claims{UserID: "admin-1", Role: model.RoleAdmin})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUserOwnAccount(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-1"] = &model.User{ID: "user-1"}
	r := userRouter(store, &service.Claims{UserID: "user-1", Role: model.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/user-1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"user-1"}, store.deleted)
}

func TestDeleteUserForbiddenForOtherUser(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-2"] = &model.User{ID: "user-2"}
	r := userRouter(store, &service.Claims{UserID: "user-1", Role: model.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/user-2", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.deleted)
}

func TestDeleteUserAdminDeletesAnyone(t *testing.T) {
	store := newStubUserAdminStore()
	store.byID["user-2"] = &model.User{ID: "user-2"}
	r := userRouter(store, &service.Claims{UserID: "admin-1", Role: model.RoleAdmin})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/user-2", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteUserNotFound(t *testing.T) {
	store := newStubUserAdminStore()
	r := userRouter(store, &service.Claims{UserID: "admin-1", Role: model.RoleAdmin})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
