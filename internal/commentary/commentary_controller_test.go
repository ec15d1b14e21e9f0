package commentary

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/gin-gonic/gin"
)

type memoryCommentary struct {
	entries   []Commentary
	lastLimit int
}

func (m *memoryCommentary) Append(e *Commentary) error {
	e.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memoryCommentary) ListByMatch(matchID uint, limit int) ([]Commentary, error) {
	m.lastLimit = limit
	var out []Commentary
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if m.entries[i].MatchID == matchID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type matchSet map[uint]bool

func (s matchSet) MatchExists(id uint) (bool, error) { return s[id], nil }

type captured struct {
	room, event string
	data        interface{}
}

type captureEmitter struct{ events []captured }

func (e *captureEmitter) Emit(room, event string, data interface{}) {
	e.events = append(e.events, captured{room, event, data})
}

func (e *captureEmitter) Broadcast(event string, data interface{}) { e.Emit("", event, data) }

func setupCommentaryRouter(repo CommentaryRepository, em realtime.Emitter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := NewCommentaryController(repo, matchSet{5: true}, em)
	r.GET("/matches/:id/commentary", cc.ListCommentary)
	r.POST("/matches/:id/commentary", func(c *gin.Context) {
		c.Set(common.ContextUserIDKey, uint(1))
		c.Set(common.ContextUserRoleKey, common.RoleAdmin)
		c.Next()
	}, cc.AddCommentary)
	return r
}

func TestAddCommentaryEmits(t *testing.T) {
	repo := &memoryCommentary{}
	em := &captureEmitter{}
	r := setupCommentaryRouter(repo, em)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches/5/commentary",
		bytes.NewBufferString(`{"text":"SIX! Over long-on.","period":"19.4","event_type":"six"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	if len(repo.entries) != 1 || repo.entries[0].AuthorID != 1 {
		t.Errorf("entries = %+v", repo.entries)
	}
	if len(em.events) != 1 || em.events[0].room != "match:5" || em.events[0].event != realtime.EventCommentaryNew {
		t.Errorf("events = %+v", em.events)
	}
}

func TestAddCommentaryDefaultsAndValidation(t *testing.T) {
	repo := &memoryCommentary{}
	r := setupCommentaryRouter(repo, &captureEmitter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches/5/commentary", bytes.NewBufferString(`{"text":"Drinks break"}`)))
	if w.Code != http.StatusCreated || repo.entries[0].EventType != "general" {
		t.Errorf("status = %d entries = %+v", w.Code, repo.entries)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches/5/commentary", bytes.NewBufferString(`{"text":"x","event_type":"dance"}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad event type status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches/6/commentary", bytes.NewBufferString(`{"text":"x"}`)))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown match status = %d", w.Code)
	}
}

func TestListCommentaryLimit(t *testing.T) {
	repo := &memoryCommentary{}
	r := setupCommentaryRouter(repo, nil)

	tests := []struct {
		query string
		want  int
	}{
		{"", 50},
		{"?limit=10", 10},
		{"?limit=1000", 200},
		{"?limit=-3", 50},
		{"?limit=abc", 50},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/5/commentary"+tt.query, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%q status = %d", tt.query, w.Code)
		}
		if repo.lastLimit != tt.want {
			t.Errorf("%q limit = %d, want %d", tt.query, repo.lastLimit, tt.want)
		}
	}
}
