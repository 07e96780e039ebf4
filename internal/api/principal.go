package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// The acting user is whoever the request claims to be: a numeric id carried
// as a query parameter on reads/deletes and as a body field on writes. It is
// resolved exactly once per request, here or at binding time, and passed
// explicitly to every store call.

// queryPrincipal resolves the acting user from the userId query parameter.
func queryPrincipal(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pathID parses a positive integer :id path segment.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
