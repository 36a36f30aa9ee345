// Package upcoming реализует HTTP-обработчик для получения счетов,
// попавших в своё окно напоминания на текущую дату.
package upcoming

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

// Handler обрабатывает запросы на получение предстоящих счетов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для выборки предстоящих счетов
}

// Service описывает интерфейс бизнес-логики выборки предстоящих счетов.
type Service interface {
	Upcoming(ctx context.Context, userID int64) ([]*models.Bill, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить предстоящие счета
// @Description Возвращает неоплаченные счета, до срока оплаты которых осталось не больше окна напоминания.
// @Tags Bills
// @Produce  json
// @Success 200 {object} map[string]any "Список предстоящих счетов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /bills/upcoming [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.upcoming"

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

	bills, err := h.service.Upcoming(r.Context(), userID)
	if err != nil {
		log.Error("failed to list upcoming bills", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list upcoming bills"))
		return
	}

	log.Info("success to list upcoming bills", slog.Int("count", len(bills)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bills": bills,
	}))
}
