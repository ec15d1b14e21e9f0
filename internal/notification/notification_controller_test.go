package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type memoryNotifications struct {
	items map[uint]*Notification
	reads map[[2]uint]bool
}

func newMemoryNotifications(items ...Notification) *memoryNotifications {
	m := &memoryNotifications{items: map[uint]*Notification{}, reads: map[[2]uint]bool{}}
	for i := range items {
		n := items[i]
		m.items[n.ID] = &n
	}
	return m
}

func (m *memoryNotifications) CreateNotification(n *Notification) error {
	n.ID = uint(len(m.items) + 100)
	m.items[n.ID] = n
	return nil
}

func (m *memoryNotifications) GetNotificationByID(id uint) (*Notification, error) {
	return m.items[id], nil
}

func (m *memoryNotifications) ListForUser(userID uint, unreadOnly bool, page, pageSize int) ([]Notification, int64, error) {
	var out []Notification
	for _, n := range m.items {
		if !n.VisibleTo(userID) {
			continue
		}
		cp := *n
		cp.Read = m.reads[[2]uint{n.ID, userID}]
		if unreadOnly && cp.Read {
			continue
		}
		out = append(out, cp)
	}
	return out, int64(len(out)), nil
}

func (m *memoryNotifications) MarkRead(notificationID, userID uint) error {
	m.reads[[2]uint{notificationID, userID}] = true
	return nil
}

func (m *memoryNotifications) MarkAllRead(userID uint) (int64, error) {
	var marked int64
	for _, n := range m.items {
		key := [2]uint{n.ID, userID}
		if n.VisibleTo(userID) && !m.reads[key] {
			m.reads[key] = true
			marked++
		}
	}
	return marked, nil
}

func (m *memoryNotifications) DeleteNotification(id uint) error {
	delete(m.items, id)
	return nil
}

type sentEvent struct {
	room, event string
}

type recordingEmitter struct{ events []sentEvent }

func (e *recordingEmitter) Emit(room, event string, _ interface{}) {
	e.events = append(e.events, sentEvent{room, event})
}

func (e *recordingEmitter) Broadcast(event string, _ interface{}) {
	e.events = append(e.events, sentEvent{"*", event})
}

type chanMirror chan *Notification

func (m chanMirror) Publish(n *Notification) error {
	m <- n
	return nil
}

func uintPtr(v uint) *uint { return &v }

func setupNotificationRouter(repo NotificationRepository, em realtime.Emitter, mirror Mirror, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	as := func(c *gin.Context) {
		c.Set(common.ContextUserIDKey, userID)
		c.Set(common.ContextUserRoleKey, common.RoleAdmin)
	}
	nc := NewNotificationController(repo, em, mirror)
	g := r.Group("/notifications", as)
	g.GET("", nc.GetNotifications)
	g.PATCH("/:id/read", nc.MarkRead)
	g.POST("/read-all", nc.MarkAllRead)
	g.POST("", nc.CreateNotification)
	g.DELETE("/:id", nc.DeleteNotification)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBroadcastEmitsAndMirrors(t *testing.T) {
	repo := newMemoryNotifications()
	em := &recordingEmitter{}
	mirror := make(chanMirror, 1)
	r := setupNotificationRouter(repo, em, mirror, 1)

	w := do(r, http.MethodPost, "/notifications", `{"title":"Rain delay","message":"Play resumes at 4pm"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	if len(em.events) != 1 || em.events[0] != (sentEvent{"*", realtime.EventNotificationNew}) {
		t.Errorf("events = %+v", em.events)
	}
	select {
	case n := <-mirror:
		if n.Title != "Rain delay" || n.Type != TypeInfo || n.CreatedByID != 1 {
			t.Errorf("mirrored %+v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast was not mirrored")
	}
}

func TestCreatePersonalEmitsToUserRoom(t *testing.T) {
	em := &recordingEmitter{}
	mirror := make(chanMirror, 1)
	r := setupNotificationRouter(newMemoryNotifications(), em, mirror, 1)

	w := do(r, http.MethodPost, "/notifications", `{"title":"Hi","message":"Your team plays today","type":"match","user_id":7}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	if len(em.events) != 1 || em.events[0] != (sentEvent{"user:7", realtime.EventNotificationNew}) {
		t.Errorf("events = %+v", em.events)
	}
	if len(mirror) != 0 {
		t.Error("personal notification should not be mirrored")
	}

	if w := do(r, http.MethodPost, "/notifications", `{"title":"x","message":"y","type":"spam"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad type status = %d", w.Code)
	}
}

func TestMarkReadVisibility(t *testing.T) {
	repo := newMemoryNotifications(
		Notification{Model: gorm.Model{ID: 1}, Title: "all"},
		Notification{Model: gorm.Model{ID: 2}, Title: "mine", UserID: uintPtr(5)},
		Notification{Model: gorm.Model{ID: 3}, Title: "theirs", UserID: uintPtr(6)},
	)
	r := setupNotificationRouter(repo, nil, nil, 5)

	tests := []struct {
		path string
		want int
	}{
		{"/notifications/1/read", http.StatusOK},
		{"/notifications/1/read", http.StatusOK},
		{"/notifications/2/read", http.StatusOK},
		{"/notifications/3/read", http.StatusNotFound},
		{"/notifications/9/read", http.StatusNotFound},
	}
	for _, tt := range tests {
		if w := do(r, http.MethodPatch, tt.path, ""); w.Code != tt.want {
			t.Errorf("%s status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
	if repo.reads[[2]uint{3, 5}] {
		t.Error("read recorded on another user's notification")
	}
}

func TestListUnreadAndReadAll(t *testing.T) {
	repo := newMemoryNotifications(
		Notification{Model: gorm.Model{ID: 1}, Title: "all"},
		Notification{Model: gorm.Model{ID: 2}, Title: "mine", UserID: uintPtr(5)},
		Notification{Model: gorm.Model{ID: 3}, Title: "theirs", UserID: uintPtr(6)},
	)
	r := setupNotificationRouter(repo, nil, nil, 5)
	do(r, http.MethodPatch, "/notifications/1/read", "")

	var body struct {
		Data []Notification `json:"data"`
	}
	w := do(r, http.MethodGet, "/notifications?unread=true", "")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 1 || body.Data[0].ID != 2 {
		t.Errorf("unread = %+v", body.Data)
	}

	if w := do(r, http.MethodPost, "/notifications/read-all", ""); w.Code != http.StatusOK {
		t.Fatalf("read-all status = %d", w.Code)
	}
	w = do(r, http.MethodGet, "/notifications?unread=true", "")
	body.Data = nil
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 0 {
		t.Errorf("after read-all unread = %+v", body.Data)
	}
}

func TestDeleteNotification(t *testing.T) {
	repo := newMemoryNotifications(Notification{Model: gorm.Model{ID: 1}, Title: "all"})
	r := setupNotificationRouter(repo, nil, nil, 1)

	if w := do(r, http.MethodDelete, "/notifications/1", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/notifications/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}
