package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup)
}

// MessageRoutes groups the lookup and registry routes.
type MessageRoutes struct {
	handler *Handler
}

// NewMessageRoutes creates the message route group.
func NewMessageRoutes(handler *Handler) *MessageRoutes {
	return &MessageRoutes{handler: handler}
}

// RegisterPublicRoutes registers lookups and the read-only registry.
func (r *MessageRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages/:key", r.handler.GetMessage)
	rg.POST("/messages/lookup", r.handler.LookupMessages)
	rg.GET("/keys", r.handler.ListKeys)
	rg.GET("/locales", r.handler.ListLocales)
	rg.GET("/locales/:locale/messages", r.handler.ExportCatalog)
}

// AdminRoutes groups the catalog maintenance routes.
type AdminRoutes struct {
	handler *Handler
}

// NewAdminRoutes creates the admin route group.
func NewAdminRoutes(handler *Handler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

// RegisterProtectedRoutes registers verification and the miss audit trail.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/verify", r.handler.VerifyCatalog)
	rg.GET("/lookups/misses", r.handler.ListMisses)
}

var (
	_ PublicRouteGroup    = (*MessageRoutes)(nil)
	_ ProtectedRouteGroup = (*AdminRoutes)(nil)
)
