package runs

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

// Controller — маршруты обработки бакета: запуск прохода и журнал.
type Controller struct {
	uc  ports.IProcessorUseCase
	log *slog.Logger
}

// New создаёт контроллер обработки бакета.
func New(uc ports.IProcessorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/runs", c.run)
	api.GET("/runs", c.history)
}

// @Summary Обработать новые файлы бакета
// @Description Синхронно обрабатывает файлы после курсора и сдвигает курсор. Упавшие файлы перечитываются следующим проходом.
// @Tags runs
// @Produce json
// @Success 200 {object} RunResponse "Итог прохода"
// @Failure 500 {object} RunResponse "Проход прерван (курсор, листинг)"
// @Router /api/v1/runs [post]
func (c *Controller) run(ctx *gin.Context) {
	report, err := c.uc.Run(ctx.Request.Context())
	if err != nil {
		c.log.Error("run failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, RunResponse{RunReport: report, Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, RunResponse{RunReport: report})
}

// @Summary Журнал обработанных файлов
// @Tags runs
// @Produce json
// @Success 200 {object} HistoryResponse "Последние обработанные файлы"
// @Router /api/v1/runs [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []domain.FileReport{}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: list})
}
