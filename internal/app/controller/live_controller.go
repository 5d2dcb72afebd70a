package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/middleware"
	"github.com/ikkim/creme-backend/internal/websocket"
)

// LiveController upgrades storefront clients to the live update stream.
type LiveController struct {
	hub      *websocket.Hub
	gateway  service.MenuGateway
	upgrader gorillaws.Upgrader
}

func NewLiveController(hub *websocket.Hub, gateway service.MenuGateway, allowedOrigins []string) *LiveController {
	return &LiveController{
		hub:     hub,
		gateway: gateway,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Connect streams {type, payload} events. The current theme is sent first so
// a fresh client can apply its style variables immediately.
// GET /api/v1/live
func (ctrl *LiveController) Connect(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := websocket.NewClient(ctrl.hub, &websocket.Conn{Conn: conn})
	theme := ctrl.gateway.FetchThemeConfig(c.Request.Context())

	client.Enqueue(service.EventThemeUpdated, theme)
	client.Serve()
}
