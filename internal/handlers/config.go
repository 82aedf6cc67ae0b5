package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
	"github.com/Armeldehe/ivoirestore-client/internal/metrics"
	"github.com/Armeldehe/ivoirestore-client/internal/session"
)

// SessionHeader carries the shopper's session id. When a request arrives
// without one (or with an expired one), a fresh session is minted and the
// header is echoed back so the frontend can keep it.
const SessionHeader = "X-Session-Id"

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	Sessions    *session.Manager
	Marketplace *marketplace.Client
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// resolveSession maps the request to its session, minting one when needed,
// and always echoes the id back to the client.
func resolveSession(c *gin.Context, cfg HandlerConfig) *session.Session {
	sess := cfg.Sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID)
	return sess
}
