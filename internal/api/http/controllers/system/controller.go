package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger — зависимость, доступность которой проверяет readiness (репозиторий истории).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — системные маршруты: liveness, readiness.
type Controller struct {
	deps []Pinger
	log  *slog.Logger
}

// New создаёт системный контроллер. Без зависимостей сервис всегда ready.
func New(log *slog.Logger, deps ...Pinger) *Controller {
	return &Controller{deps: deps, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	for _, d := range c.deps {
		if err := d.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
