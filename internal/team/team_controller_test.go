package team

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MockTeamRepository implements TeamRepository for testing
type MockTeamRepository struct {
	teams   map[uint]*Team
	roster  map[uint][]RosterPlayer
	nextID  uint
	deleted []uint
}

func newMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{teams: map[uint]*Team{}, roster: map[uint][]RosterPlayer{}, nextID: 1}
}

func (m *MockTeamRepository) CreateTeam(t *Team) error {
	t.ID = m.nextID
	m.nextID++
	m.teams[t.ID] = t
	return nil
}

func (m *MockTeamRepository) GetTeamByID(id uint) (*Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *MockTeamRepository) GetAllTeams(page, pageSize int, filter TeamFilter) ([]Team, int64, error) {
	var out []Team
	for _, t := range m.teams {
		if filter.Sport == "" || t.Sport == filter.Sport {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (m *MockTeamRepository) GetRoster(teamID uint) ([]RosterPlayer, error) {
	return m.roster[teamID], nil
}

func (m *MockTeamRepository) UpdateTeam(t *Team) error {
	m.teams[t.ID] = t
	return nil
}

func (m *MockTeamRepository) DeleteTeam(id uint) error {
	delete(m.teams, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *MockTeamRepository) TeamExists(id uint) (bool, error) {
	_, ok := m.teams[id]
	return ok, nil
}

type recordingIndexer struct {
	indexed []search.Document
	removed []uint
}

func (r *recordingIndexer) Index(_ context.Context, doc search.Document) error {
	r.indexed = append(r.indexed, doc)
	return nil
}

func (r *recordingIndexer) Delete(_ context.Context, _ string, id uint) error {
	r.removed = append(r.removed, id)
	return nil
}

func setupTeamRouter(repo TeamRepository, idx search.Indexer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tc := NewTeamController(repo, idx)
	r.GET("/teams", tc.GetAllTeams)
	r.GET("/teams/:id", tc.GetTeamByID)
	r.POST("/teams", tc.CreateTeam)
	r.PUT("/teams/:id", tc.UpdateTeam)
	r.DELETE("/teams/:id", tc.DeleteTeam)
	return r
}

func TestCreateTeamIndexes(t *testing.T) {
	repo := newMockTeamRepository()
	idx := &recordingIndexer{}
	r := setupTeamRouter(repo, idx)

	body := `{"name":"Mumbai Indians","short_name":"MI","sport":"cricket","country":"India","social_media":{"twitter":"@mipaltan"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/teams", bytes.NewBufferString(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(idx.indexed) != 1 || idx.indexed[0].Kind != search.KindTeam || idx.indexed[0].Name != "Mumbai Indians" {
		t.Errorf("indexed = %+v", idx.indexed)
	}
	if repo.teams[1].SocialMedia.Data().Twitter != "@mipaltan" {
		t.Errorf("social media not stored: %+v", repo.teams[1].SocialMedia.Data())
	}
}

func TestCreateTeamValidation(t *testing.T) {
	r := setupTeamRouter(newMockTeamRepository(), &recordingIndexer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/teams", bytes.NewBufferString(`{"name":"X"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if _, ok := resp.Errors["sport"]; !ok {
		t.Errorf("expected sport error, got %v", resp.Errors)
	}
}

func TestGetTeamWithRoster(t *testing.T) {
	repo := newMockTeamRepository()
	repo.teams[4] = &Team{Model: gorm.Model{ID: 4}, Name: "Arsenal", Sport: "football"}
	repo.roster[4] = []RosterPlayer{{ID: 10, Name: "Bukayo Saka"}}
	r := setupTeamRouter(repo, &recordingIndexer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/4", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Data Team `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data.Players) != 1 || resp.Data.Players[0].Name != "Bukayo Saka" {
		t.Errorf("roster = %+v", resp.Data.Players)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/99", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing team status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", w.Code)
	}
}

func TestUpdateTeamPartial(t *testing.T) {
	repo := newMockTeamRepository()
	repo.teams[2] = &Team{Model: gorm.Model{ID: 2}, Name: "Chelsea", Sport: "football", Country: "England"}
	idx := &recordingIndexer{}
	r := setupTeamRouter(repo, idx)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/teams/2", bytes.NewBufferString(`{"short_name":"CHE"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	got := repo.teams[2]
	if got.ShortName != "CHE" || got.Name != "Chelsea" || got.Country != "England" {
		t.Errorf("team = %+v", got)
	}
	if len(idx.indexed) != 1 {
		t.Errorf("update should reindex")
	}
}

func TestDeleteTeam(t *testing.T) {
	repo := newMockTeamRepository()
	repo.teams[3] = &Team{Model: gorm.Model{ID: 3}, Name: "Liverpool"}
	idx := &recordingIndexer{}
	r := setupTeamRouter(repo, idx)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/teams/3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(repo.deleted) != 1 || len(idx.removed) != 1 || idx.removed[0] != 3 {
		t.Errorf("deleted = %v removed = %v", repo.deleted, idx.removed)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/teams/3", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}
