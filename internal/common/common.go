package common

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey   = "userID"   // Authenticated user's ID
	ContextUserRoleKey = "userRole" // Authenticated user's role

	RoleAdmin = "admin"
	RoleUser  = "user"

	defaultPageSize = 10
	maxPageSize     = 100
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// GetUserRoleFromContext returns the role set by the auth middleware, or "".
func GetUserRoleFromContext(c *gin.Context) string {
	return c.GetString(ContextUserRoleKey)
}

// IsAdmin reports whether the authenticated caller is an admin.
func IsAdmin(c *gin.Context) bool {
	return GetUserRoleFromContext(c) == RoleAdmin
}

// ParseIDParam reads a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// ParseOptionalUintQuery reads a numeric query parameter; absent or malformed yields nil.
func ParseOptionalUintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

// Pagination reads page/page_size query parameters, clamping to sane bounds.
func Pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// Offset converts a page number into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
