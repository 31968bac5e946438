package fibonacci

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fibCalc/internal/domain"
	"fibCalc/internal/ports"
)

// Controller — маршруты вычисления: fibonacci, compare, history, cache.
type Controller struct {
	uc  ports.IFibonacciUseCase
	log *slog.Logger
}

// New создаёт контроллер.
func New(uc ports.IFibonacciUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/fibonacci/:strategy/:position", c.calculateByPath)
	api.POST("/fibonacci", c.calculate)
	api.GET("/compare/:position", c.compare)
	api.GET("/history", c.history)
	api.GET("/cache", c.cache)
}

// statusFor переводит ошибку use case в HTTP-статус.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnknownStrategy),
		errors.Is(err, domain.ErrPositionTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.log.Error(op+" failed", "error", err)
	} else {
		c.log.Warn(op+" rejected", "error", err)
	}
	ctx.JSON(status, ErrorResponse{Message: err.Error()})
}

func positionParam(ctx *gin.Context) (int, bool) {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "position must be an integer"})
		return 0, false
	}
	return position, true
}

// @Summary Вычислить число Фибоначчи
// @Description Считает F(position) выбранной стратегией (plain или memo). F(0) = F(1) = 1.
// @Tags fibonacci
// @Produce json
// @Param strategy path string true "plain | memo"
// @Param position path int true "Позиция"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} ErrorResponse "Отрицательная или слишком большая позиция, неизвестная стратегия"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/fibonacci/{strategy}/{position} [get]
func (c *Controller) calculateByPath(ctx *gin.Context) {
	position, ok := positionParam(ctx)
	if !ok {
		return
	}
	c.respondCalculation(ctx, position, ctx.Param("strategy"))
}

// @Summary Вычислить число Фибоначчи
// @Description Принимает позицию и стратегию (по умолчанию memo). Результат сохраняется в историю.
// @Tags fibonacci
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/fibonacci [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request: " + err.Error()})
		return
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = domain.StrategyMemo
	}
	c.respondCalculation(ctx, *req.Position, strategy)
}

func (c *Controller) respondCalculation(ctx *gin.Context, position int, strategy string) {
	calc, err := c.uc.Calculate(ctx.Request.Context(), position, strategy)
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}
	ctx.JSON(http.StatusOK, CalculationResponse{
		Position:   calc.Position,
		Strategy:   calc.Strategy,
		Value:      calc.Value,
		CacheHit:   calc.CacheHit,
		DurationMs: ms(calc.Duration),
	})
}

// @Summary Сравнить стратегии
// @Description Считает позицию обеими стратегиями и возвращает время каждой и ускорение memo.
// @Tags fibonacci
// @Produce json
// @Param position path int true "Позиция"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/compare/{position} [get]
func (c *Controller) compare(ctx *gin.Context) {
	position, ok := positionParam(ctx)
	if !ok {
		return
	}
	cmp, err := c.uc.Compare(ctx.Request.Context(), position)
	if err != nil {
		c.fail(ctx, "compare", err)
		return
	}
	ctx.JSON(http.StatusOK, CompareResponse{
		Position:        cmp.Position,
		Value:           cmp.MemoValue,
		Equal:           cmp.Equal(),
		PlainDurationMs: ms(cmp.PlainDuration),
		MemoDurationMs:  ms(cmp.MemoDuration),
		Speedup:         cmp.Speedup(),
	})
}

// @Summary Получить историю вычислений
// @Tags fibonacci
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, calc := range list {
		items[i] = HistoryItem{
			ID:         calc.ID,
			Position:   calc.Position,
			Strategy:   calc.Strategy,
			Value:      calc.Value,
			CacheHit:   calc.CacheHit,
			DurationMs: ms(calc.Duration),
			Timestamp:  calc.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Состояние кэша memo
// @Description Число закэшированных позиций и наибольшая из них (-1, если кэш пуст).
// @Tags fibonacci
// @Produce json
// @Success 200 {object} CacheResponse
// @Router /api/v1/cache [get]
func (c *Controller) cache(ctx *gin.Context) {
	stats := c.uc.CacheStats(ctx.Request.Context())
	ctx.JSON(http.StatusOK, CacheResponse{Entries: stats.Entries, MaxPosition: stats.MaxPosition})
}
