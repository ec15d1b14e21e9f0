package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestPaginationDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		target     string
		page, size int
	}{
		{"/x", 1, 10},
		{"/x?page=3&page_size=25", 3, 25},
		{"/x?page=-2&page_size=500", 1, 10},
		{"/x?page=abc&page_size=0", 1, 10},
	}
	for _, tt := range tests {
		page, size := Pagination(testContext(tt.target))
		if page != tt.page || size != tt.size {
			t.Errorf("%s: got (%d,%d), want (%d,%d)", tt.target, page, size, tt.page, tt.size)
		}
	}
}

func TestParseIDParam(t *testing.T) {
	c := testContext("/x")
	c.Params = gin.Params{{Key: "id", Value: "17"}}
	id, err := ParseIDParam(c, "id")
	if err != nil || id != 17 {
		t.Fatalf("got %d, %v", id, err)
	}

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	if _, err := ParseIDParam(c, "id"); err == nil {
		t.Fatal("zero id should be rejected")
	}
	c.Params = gin.Params{{Key: "id", Value: "x"}}
	if _, err := ParseIDParam(c, "id"); err == nil {
		t.Fatal("non-numeric id should be rejected")
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	c := testContext("/x")
	if _, err := GetUserIDFromContext(c); err == nil {
		t.Fatal("expected error without user")
	}
	c.Set(ContextUserIDKey, uint(5))
	c.Set(ContextUserRoleKey, RoleAdmin)
	id, err := GetUserIDFromContext(c)
	if err != nil || id != 5 {
		t.Fatalf("got %d, %v", id, err)
	}
	if !IsAdmin(c) {
		t.Fatal("expected admin")
	}
}
