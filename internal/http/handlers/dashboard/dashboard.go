// Package dashboard реализует HTTP-обработчик сводки по счетам пользователя.
//
// Сводка пересчитывается при каждом запросе из текущего снимка счетов:
// количества и суммы по статусам, предстоящие счета и последние изменённые.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bill-reminder/internal/http/response"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// Handler обрабатывает запросы на получение сводки дашборда.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для агрегации счетов
}

// Service описывает интерфейс бизнес-логики агрегации счетов.
type Service interface {
	Dashboard(ctx context.Context, userID int64) (*models.DashboardSummary, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить сводку по счетам
// @Description Возвращает количества и суммы счетов по статусам, предстоящие счета и последние изменённые.
// @Tags Dashboard
// @Produce  json
// @Success 200 {object} map[string]any "Сводка дашборда"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboard [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	summary, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		log.Error("failed to build dashboard summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build dashboard summary"))
		return
	}

	log.Info("success to build dashboard summary", slog.Int("total_bills", summary.TotalBills))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"summary": summary,
	}))
}
