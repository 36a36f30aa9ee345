package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "Error", "error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"data": map[string]any{
				"token": "test-token",
				"user":  models.User{ID: 1, Email: req["email"]},
			},
		})
	})

	mux.HandleFunc("/api/v1/bills", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "Error", "error": "invalid or expired token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"data": map[string]any{
				"bills": []models.Bill{{ID: 1, Name: "аренда", Amount: 100000}},
			},
		})
	})

	mux.HandleFunc("/api/v1/bills/99", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Error", "error": "bill not found"})
	})

	return httptest.NewServer(mux)
}

func TestClient_LoginAndListBills(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	session, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "test-token", session.Token)
	assert.Equal(t, int64(1), session.User.ID)

	bills, err := c.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "аренда", bills[0].Name)
}

func TestClient_LoginFailure(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Login(context.Background(), "user@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	// текст ошибки сервера сохраняется
	assert.Contains(t, apiErr.Message, "invalid credentials")
	assert.Nil(t, c.Session())
}

func TestClient_WithoutSession(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.ListBills(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClient_ExpiredSessionIsPurged(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	session, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, session)

	// делаем токен недействительным на стороне клиента
	c.mu.Lock()
	c.session.Token = "stale-token"
	c.mu.Unlock()

	_, err = c.ListBills(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)

	// сессия сброшена, повторный вызов требует входа, а не повторяет запрос
	assert.Nil(t, c.Session())
	_, err = c.ListBills(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClient_ExpiredSessionWithNonJSONBody(t *testing.T) {
	// прокси или балансировщик может вернуть 401 с text/html телом
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("<html>401 Unauthorized</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.mu.Lock()
	c.session = &Session{Token: "stale-token"}
	c.mu.Unlock()

	_, err := c.ListBills(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, c.Session())
}

func TestClient_BillNotFound(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	_, err = c.GetBill(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestClient_Logout(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, c.Session())

	c.Logout()
	assert.Nil(t, c.Session())
}
