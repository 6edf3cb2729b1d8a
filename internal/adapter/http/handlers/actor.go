package handlers

import (
	"strings"

	"smartsales365/internal/usecase"

	"github.com/gin-gonic/gin"
)

// actorFrom builds the audit identity of the request. Auth is handled
// upstream; the gateway forwards the resolved username in X-Username.
func actorFrom(c *gin.Context) usecase.Actor {
	username := strings.TrimSpace(c.GetHeader("X-Username"))
	if username == "" {
		username = "anonimo"
	}
	return usecase.Actor{Username: username, IP: c.ClientIP()}
}
