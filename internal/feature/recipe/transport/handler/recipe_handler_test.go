package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	authmw "dawn_eats/internal/feature/auth/transport/middleware"
	"dawn_eats/internal/feature/recipe/domain/entity"
	"dawn_eats/internal/feature/recipe/usecase"
)

type mockRecipeUsecase struct {
	ListFunc   func(ctx context.Context, skip, limit int) ([]entity.Recipe, error)
	CreateFunc func(ctx context.Context, owner *authentity.User, in usecase.CreateRecipeInput) (*entity.Recipe, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Recipe, error)
}

func (m *mockRecipeUsecase) List(ctx context.Context, skip, limit int) ([]entity.Recipe, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockRecipeUsecase) Create(ctx context.Context, owner *authentity.User, in usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, owner, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecipeUsecase) Get(ctx context.Context, id uint) (*entity.Recipe, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrRecipeNotFound
}

func newRouter(uc RecipeUsecase, user *authentity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRecipeHandler(uc)
	r := gin.New()
	r.GET("/recipes/", h.List)
	r.GET("/recipes/:id", h.Get)
	r.POST("/recipes/", func(c *gin.Context) {
		if user != nil {
			c.Set(authmw.ContextUser, user)
		}
	}, h.Create)
	return r
}

func TestRecipeHandler_List(t *testing.T) {
	r := newRouter(&mockRecipeUsecase{
		ListFunc: func(ctx context.Context, skip, limit int) ([]entity.Recipe, error) {
			assert.Equal(t, 0, skip)
			assert.Equal(t, 100, limit)
			return []entity.Recipe{{ID: 1, Title: "Porridge", Ingredients: []string{"oats"}, UserID: 2}}, nil
		},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Porridge", body[0]["title"])
	assert.Equal(t, []any{"oats"}, body[0]["ingredients"])
	assert.Nil(t, body[0]["nutrition_info"])
}

func TestRecipeHandler_List_InvalidQuery(t *testing.T) {
	r := newRouter(&mockRecipeUsecase{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/?limit=-1", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"detail":"query.limit: must be greater than or equal to 0"}`, w.Body.String())
}

func TestRecipeHandler_Create(t *testing.T) {
	owner := &authentity.User{ID: 4, Username: "dana", Email: "d@x.com"}

	tests := []struct {
		name           string
		user           *authentity.User
		body           string
		expectedStatus int
		check          func(t *testing.T, body map[string]any)
	}{
		{
			name:           "success: structured fields pass through",
			user:           owner,
			body:           `{"title":"Shakshuka","ingredients":["eggs","tomato"],"nutrition_info":{"kcal":320},"user_id":77}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(4), body["user_id"])
				assert.Equal(t, []any{"eggs", "tomato"}, body["ingredients"])
				assert.Equal(t, map[string]any{"kcal": float64(320)}, body["nutrition_info"])
				author, ok := body["author"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "dana", author["username"])
			},
		},
		{
			name:           "failure: ingredients must be a list",
			user:           owner,
			body:           `{"title":"Shakshuka","ingredients":"eggs"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "body.ingredients: must be of type array", body["detail"])
			},
		},
		{
			name:           "failure: missing title",
			user:           owner,
			body:           `{}`,
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "body.title: field required", body["detail"])
			},
		},
		{
			name:           "failure: unauthenticated",
			body:           `{"title":"x"}`,
			expectedStatus: http.StatusUnauthorized,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Not authenticated", body["detail"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockRecipeUsecase{
				CreateFunc: func(ctx context.Context, owner *authentity.User, in usecase.CreateRecipeInput) (*entity.Recipe, error) {
					return &entity.Recipe{
						ID:            1,
						Title:         in.Title,
						Ingredients:   in.Ingredients,
						NutritionInfo: in.NutritionInfo,
						UserID:        owner.ID,
						Author:        owner,
					}, nil
				},
			}
			r := newRouter(uc, tt.user)

			req := httptest.NewRequest(http.MethodPost, "/recipes/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.check(t, body)
		})
	}
}

func TestRecipeHandler_Get(t *testing.T) {
	r := newRouter(&mockRecipeUsecase{}, nil)

	tests := []struct {
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"/recipes/12", http.StatusNotFound, `{"detail":"Recipe not found"}`},
		{"/recipes/x1", http.StatusUnprocessableEntity, `{"detail":"path.recipe_id: value \"x1\" is not a valid integer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
