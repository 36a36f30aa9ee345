// Package client реализует Go-клиент HTTP API сервиса напоминаний о счетах.
//
// Клиент хранит сессию (JWT и профиль пользователя) и прикладывает токен
// к каждому запросу. Ответ 401 означает, что сессия истекла: клиент
// сбрасывает её и возвращает ErrSessionExpired без повторной попытки —
// повторный вход выполняет вызывающая сторона.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// ErrSessionExpired возвращается, когда сервер ответил 401: сессия сброшена,
// нужен повторный вход.
var ErrSessionExpired = errors.New("session expired")

// ErrNotAuthenticated возвращается при вызове защищённой операции без сессии.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrBillNotFound возвращается, когда сервер ответил 404 на операцию со счётом.
var ErrBillNotFound = errors.New("bill not found")

// APIError — ошибка уровня API с сохранённым текстом сервера.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Session — активная сессия клиента: токен и профиль вошедшего пользователя.
type Session struct {
	Token string
	User  *models.User
}

// Client — HTTP-клиент API напоминаний о счетах.
// Безопасен для использования из нескольких горутин.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.RWMutex
	session *Session
}

// New создаёт новый клиент API по базовому адресу сервера,
// например http://localhost:8080.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Session возвращает копию активной сессии или nil, если входа не было.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Logout сбрасывает сессию локально. Запрос на сервер не выполняется:
// токен остаётся валидным до истечения срока действия.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

// envelope — стандартный формат ответа сервера.
type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, withAuth bool) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		c.mu.RLock()
		session := c.session
		c.mu.RUnlock()
		if session == nil {
			return nil, ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	return req, nil
}

// do выполняет запрос и декодирует конверт ответа в out (если out != nil).
// Ответ 401 на защищённой операции сбрасывает сессию.
func (c *Client) do(req *http.Request, withAuth bool, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// 401 и 404 распознаются до разбора тела: перехваченный прокси ответ
	// может вообще не содержать JSON, а сессию сбросить всё равно нужно.
	if resp.StatusCode == http.StatusUnauthorized && withAuth {
		c.Logout()
		return ErrSessionExpired
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrBillNotFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 || env.Status != "OK" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// authPayload — данные ответа register и login.
type authPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register создаёт нового пользователя и открывает сессию.
func (c *Client) Register(ctx context.Context, email, name, password string) (*Session, error) {
	body := map[string]string{"email": email, "name": name, "password": password}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/register", body, false)
	if err != nil {
		return nil, err
	}
	var payload authPayload
	if err := c.do(req, false, &payload); err != nil {
		return nil, err
	}
	return c.storeSession(payload), nil
}

// Login выполняет вход и открывает сессию.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/login", body, false)
	if err != nil {
		return nil, err
	}
	var payload authPayload
	if err := c.do(req, false, &payload); err != nil {
		return nil, err
	}
	return c.storeSession(payload), nil
}

func (c *Client) storeSession(payload authPayload) *Session {
	session := &Session{Token: payload.Token, User: payload.User}
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	s := *session
	return &s
}

// CreateBill создаёт счёт и возвращает его ID.
func (c *Client) CreateBill(ctx context.Context, bill models.DummyBill) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/bills", bill, true)
	if err != nil {
		return 0, err
	}
	var payload struct {
		LastAddedID int64 `json:"last_added_id"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return 0, err
	}
	return payload.LastAddedID, nil
}

// GetBill возвращает счёт по ID.
func (c *Client) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/bills/%d", id), nil, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Bill *models.Bill `json:"bill"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Bill, nil
}

// ListBills возвращает все счета пользователя.
func (c *Client) ListBills(ctx context.Context) ([]*models.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/bills", nil, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Bills []*models.Bill `json:"bills"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Bills, nil
}

// UpdateBill частично обновляет счёт и возвращает его актуальное состояние.
func (c *Client) UpdateBill(ctx context.Context, id int64, upd models.DummyUpdateBill) (*models.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/bills/%d", id), upd, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Bill *models.Bill `json:"bill"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Bill, nil
}

// MarkBillPaid отмечает счёт оплаченным.
func (c *Client) MarkBillPaid(ctx context.Context, id int64) (*models.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/bills/%d/pay", id), nil, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Bill *models.Bill `json:"bill"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Bill, nil
}

// DeleteBill удаляет счёт по ID.
func (c *Client) DeleteBill(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/bills/%d", id), nil, true)
	if err != nil {
		return err
	}
	return c.do(req, true, nil)
}

// UpcomingBills возвращает счета в окне напоминания.
func (c *Client) UpcomingBills(ctx context.Context) ([]*models.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/bills/upcoming", nil, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Bills []*models.Bill `json:"bills"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Bills, nil
}

// Dashboard возвращает сводку по счетам пользователя.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/dashboard", nil, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Summary *models.DashboardSummary `json:"summary"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.Summary, nil
}

// NotificationSettings возвращает настройки уведомлений пользователя.
func (c *Client) NotificationSettings(ctx context.Context) (*models.DummyNotificationSettings, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/notifications", nil, true)
	if err != nil {
		return nil, err
	}
	var payload models.DummyNotificationSettings
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SendTestNotification просит сервер отправить тестовое сообщение
// в Telegram-чат пользователя.
func (c *Client) SendTestNotification(ctx context.Context, message string) error {
	body := map[string]string{"message": message}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/notifications/test", body, true)
	if err != nil {
		return err
	}
	return c.do(req, true, nil)
}

// UpdateNotificationSettings перезаписывает настройки уведомлений пользователя.
func (c *Client) UpdateNotificationSettings(ctx context.Context, settings models.DummyNotificationSettings) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/api/v1/notifications", settings, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := c.do(req, true, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}
