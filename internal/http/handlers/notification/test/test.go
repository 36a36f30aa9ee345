// Package test реализует HTTP-обработчик отправки тестового сообщения
// в Telegram-чат текущего пользователя.
package test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/bill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bill-reminder/internal/http/response"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/sl"
	notificationservice "github.com/magabrotheeeer/bill-reminder/internal/services/notification"
)

// Handler обрабатывает запросы на отправку тестового сообщения.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис отправки тестовых уведомлений
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс отправки тестового сообщения в Telegram.
type Service interface {
	SendTestTelegram(ctx context.Context, userID int64, message string) error
}

// Request — структура входных данных с текстом тестового сообщения.
type Request struct {
	Message string `json:"message" validate:"required"`
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправить тестовое сообщение в Telegram
// @Description Отправляет тестовое сообщение в чат, указанный в настройках уведомлений.
// @Tags Notifications
// @Accept  json
// @Produce  json
// @Param request body Request true "Текст тестового сообщения"
// @Success 200 {object} map[string]any "Сообщение отправлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или Telegram не настроен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /notifications/test [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.test"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.SendTestTelegram(r.Context(), userID, req.Message); err != nil {
		if errors.Is(err, notificationservice.ErrTelegramNotConfigured) {
			log.Error("telegram is not configured", sl.UserID(userID))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("telegram is not configured"))
			return
		}
		log.Error("failed to send test message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not send test message"))
		return
	}

	log.Info("success to send test message", sl.UserID(userID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "test message sent",
	}))
}
