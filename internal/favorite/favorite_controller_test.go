package favorite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MockFavoriteRepository keeps favorites in memory. CreateErr simulates the
// unique index firing after the lookup passed.
type MockFavoriteRepository struct {
	favorites map[uint]*Favorite
	entities  map[EntityType]map[uint]bool
	CreateErr error
}

func newMockRepo() *MockFavoriteRepository {
	return &MockFavoriteRepository{
		favorites: map[uint]*Favorite{},
		entities: map[EntityType]map[uint]bool{
			EntityTeam:   {1: true},
			EntityPlayer: {2: true},
			EntityMatch:  {3: true},
		},
	}
}

func (m *MockFavoriteRepository) CreateFavorite(f *Favorite) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	f.ID = uint(len(m.favorites) + 1)
	m.favorites[f.ID] = f
	return nil
}

func (m *MockFavoriteRepository) GetFavoriteByID(id uint) (*Favorite, error) {
	return m.favorites[id], nil
}

func (m *MockFavoriteRepository) FindFavorite(userID uint, t EntityType, entityID uint) (*Favorite, error) {
	for _, f := range m.favorites {
		if f.UserID == userID && f.EntityType == t && f.EntityID == entityID {
			return f, nil
		}
	}
	return nil, nil
}

func (m *MockFavoriteRepository) ListFavorites(userID uint, t EntityType) ([]Favorite, error) {
	var out []Favorite
	for _, f := range m.favorites {
		if f.UserID == userID && (t == "" || f.EntityType == t) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *MockFavoriteRepository) DeleteFavorite(id uint) error {
	delete(m.favorites, id)
	return nil
}

func (m *MockFavoriteRepository) EntityExists(t EntityType, id uint) (bool, error) {
	return m.entities[t][id], nil
}

func setupFavoriteRouter(repo FavoriteRepository, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	fc := NewFavoriteController(repo)
	g := r.Group("/favorites", func(c *gin.Context) {
		c.Set(common.ContextUserIDKey, userID)
		c.Set(common.ContextUserRoleKey, common.RoleUser)
	})
	g.GET("", fc.GetFavorites)
	g.POST("", fc.AddFavorite)
	g.DELETE("/:id", fc.RemoveFavorite)
	return r
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddFavorite(t *testing.T) {
	r := setupFavoriteRouter(newMockRepo(), 10)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"team", `{"entity_type":"team","entity_id":1}`, http.StatusCreated},
		{"duplicate", `{"entity_type":"team","entity_id":1}`, http.StatusConflict},
		{"player", `{"entity_type":"player","entity_id":2}`, http.StatusCreated},
		{"missing match", `{"entity_type":"match","entity_id":99}`, http.StatusNotFound},
		{"bad type", `{"entity_type":"venue","entity_id":1}`, http.StatusBadRequest},
		{"no id", `{"entity_type":"team"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := send(r, http.MethodPost, "/favorites", tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestAddFavoriteUniqueIndexConflict(t *testing.T) {
	repo := newMockRepo()
	repo.CreateErr = gorm.ErrDuplicatedKey
	r := setupFavoriteRouter(repo, 10)

	if w := send(r, http.MethodPost, "/favorites", `{"entity_type":"match","entity_id":3}`); w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestListFavoritesByType(t *testing.T) {
	repo := newMockRepo()
	repo.favorites[1] = &Favorite{Model: gorm.Model{ID: 1}, UserID: 10, EntityType: EntityTeam, EntityID: 1}
	repo.favorites[2] = &Favorite{Model: gorm.Model{ID: 2}, UserID: 10, EntityType: EntityMatch, EntityID: 3}
	repo.favorites[3] = &Favorite{Model: gorm.Model{ID: 3}, UserID: 11, EntityType: EntityTeam, EntityID: 1}
	r := setupFavoriteRouter(repo, 10)

	var body struct {
		Data []Favorite `json:"data"`
	}
	w := send(r, http.MethodGet, "/favorites?type=team", "")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 1 || body.Data[0].ID != 1 {
		t.Errorf("favorites = %+v", body.Data)
	}

	if w := send(r, http.MethodGet, "/favorites?type=venue", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad type status = %d", w.Code)
	}
}

func TestRemoveFavoriteOwnerOnly(t *testing.T) {
	repo := newMockRepo()
	repo.favorites[1] = &Favorite{Model: gorm.Model{ID: 1}, UserID: 11, EntityType: EntityTeam, EntityID: 1}
	repo.favorites[2] = &Favorite{Model: gorm.Model{ID: 2}, UserID: 10, EntityType: EntityTeam, EntityID: 1}
	r := setupFavoriteRouter(repo, 10)

	if w := send(r, http.MethodDelete, "/favorites/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("other user's favorite status = %d, want 404", w.Code)
	}
	if w := send(r, http.MethodDelete, "/favorites/2", ""); w.Code != http.StatusOK {
		t.Errorf("own favorite status = %d, want 200", w.Code)
	}
	if _, ok := repo.favorites[1]; !ok {
		t.Error("other user's favorite was removed")
	}
}
