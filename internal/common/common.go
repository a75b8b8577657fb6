package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextOfficerKey   = "officerName" // Officer name resolved by the session middleware
	ContextRequestIDKey = "requestID"   // Request id set by the RequestID middleware
)

// SetOfficer stores the officer name on the Gin context.
func SetOfficer(c *gin.Context, name string) {
	c.Set(ContextOfficerKey, name)
}

// GetOfficerFromContext retrieves the officer name the session middleware resolved.
func GetOfficerFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextOfficerKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok && name != ""
}

// ResolveOfficer prefers an explicit officer name from the request body and
// falls back to the session officer. The result is trimmed.
func ResolveOfficer(c *gin.Context, explicit string) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}
	name, _ := GetOfficerFromContext(c)
	return strings.TrimSpace(name)
}
