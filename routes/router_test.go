package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/gin-gonic/gin"
)

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(staticFrontend(dir))

	tests := []struct {
		method, path string
		want         int
		contains     string
	}{
		{http.MethodGet, "/app.js", http.StatusOK, "console.log"},
		{http.MethodGet, "/matches/12", http.StatusOK, "<html>app</html>"},
		{http.MethodGet, "/api/unknown", http.StatusNotFound, "Route not found"},
		{http.MethodPost, "/anything", http.StatusNotFound, "Route not found"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want || !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("%s %s = %d %q", tt.method, tt.path, w.Code, w.Body.String())
		}
	}
}

func TestStaticFrontendWithoutBuild(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(staticFrontend(t.TempDir()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCORSConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "production"
	cfg.App.FrontendURL = "https://scores.example.com"
	c := corsConfig(cfg)
	if c.AllowAllOrigins || len(c.AllowOrigins) != 1 || c.AllowOrigins[0] != "https://scores.example.com" {
		t.Errorf("production cors = %+v", c)
	}

	cfg.App.Env = "development"
	if c := corsConfig(cfg); !c.AllowAllOrigins {
		t.Error("development should allow all origins")
	}
}
