package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger — зависимость, доступность которой проверяет readiness (кэш, журнал запусков).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — системные маршруты: liveness, readiness.
type Controller struct {
	checks map[string]Pinger
	log    *slog.Logger
}

// New создаёт системный контроллер. checks — имя зависимости и её проверка; nil-значения пропускаются.
func New(checks map[string]Pinger, log *slog.Logger) *Controller {
	return &Controller{checks: checks, log: log}
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
	for name, p := range c.checks {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "dependency", name, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "dependency": name, "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
