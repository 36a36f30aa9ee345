// Package pay реализует HTTP-обработчик отметки счёта оплаченным.
//
// Оплата терминальна: после отметки счёт не возвращается в просроченные
// по дате, вернуть статус unpaid можно только явным обновлением.
package pay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bill-reminder/internal/http/response"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
	"github.com/magabrotheeeer/bill-reminder/internal/storage/repository"
)

// Handler обрабатывает запросы на отметку счёта оплаченным.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для оплаты счетов
}

// Service описывает интерфейс бизнес-логики отметки счёта оплаченным.
type Service interface {
	MarkPaid(ctx context.Context, id, userID int64) (*models.Bill, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить счёт оплаченным
// @Description Выставляет статус счёта в paid и возвращает обновлённый счёт.
// @Tags Bills
// @Produce  json
// @Param id path int true "ID счёта"
// @Success 200 {object} map[string]any "Обновлённый счёт"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Счёт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /bills/{id}/pay [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.pay"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	bill, err := h.service.MarkPaid(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			log.Error("bill not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("bill not found"))
			return
		}
		log.Error("failed to mark bill as paid", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not mark bill as paid"))
		return
	}

	log.Info("success to mark bill as paid", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bill": bill,
	}))
}
