package enrich

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

// Controller — маршрут обогащения батча вакансий.
type Controller struct {
	uc  ports.IEnricher
	log *slog.Logger
}

// New создаёт контроллер обогащения.
func New(uc ports.IEnricher, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/enrich", c.enrich)
}

// @Summary Обогатить батч вакансий
// @Description Возвращает уровень сеньорности для каждой вакансии: из кэша или одним вызовом модели на все промахи.
// @Tags enrich
// @Accept json
// @Produce json
// @Param request body EnrichRequest true "Вакансии"
// @Success 200 {object} EnrichResponse "Уровни по позициям входа"
// @Failure 400 {object} ErrorResponse "Невалидный запрос или вакансия без company/title"
// @Router /api/v1/enrich [post]
func (c *Controller) enrich(ctx *gin.Context) {
	var req EnrichRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("enrich bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	res, err := c.uc.Enrich(ctx.Request.Context(), req.Postings)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPosting) {
			c.log.Warn("enrich malformed posting", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("enrich failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, EnrichResponse{
		Seniorities: res.Seniorities,
		OK:          res.OK,
		Hits:        res.Hits,
		Misses:      res.Misses,
	})
}
