package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/domain"
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/identity"
	"github.com/earnbase/earnbot/internal/state"
	"github.com/earnbase/earnbot/internal/telegram"
)

const testChatID int64 = 42

type staticTokens struct{}

func (staticTokens) Token(ctx context.Context, refreshToken string) (string, error) {
	return "tok", nil
}

// backendRecorder serves the earning API and counts requests per path.
type backendRecorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func newBackendRecorder() *backendRecorder {
	return &backendRecorder{calls: make(map[string]int)}
}

func (r *backendRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.calls[req.URL.Path]++
	r.mu.Unlock()

	switch req.URL.Path {
	case "/api/dashboard":
		json.NewEncoder(w).Encode(map[string]any{
			"username":          "worker1",
			"balance":           12.5,
			"available_balance": 10,
			"bonus":             0.02,
		})
	case "/api/tasks", "/api/top-earners", "/api/withdrawal-history", "/api/payment-history":
		w.Write([]byte("[]"))
	default:
		w.Write([]byte("{}"))
	}
}

func (r *backendRecorder) count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[path]
}

func (r *backendRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

// fakeTelegram accepts any Bot API method so handlers can send messages.
func fakeTelegram(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/deleteMessage") {
			w.Write([]byte(`{"ok":true,"result":true}`))
			return
		}
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":42,"type":"private"}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestHandler(t *testing.T, backend *backendRecorder, authURL string) (*Handler, *bot.Bot) {
	t.Helper()

	tgSrv := fakeTelegram(t)
	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	b, err := bot.New("test-token",
		bot.WithServerURL(tgSrv.URL),
		bot.WithSkipGetMe(),
	)
	require.NoError(t, err)

	cfg := &config.Config{}
	h := New(Deps{
		Bot:      b,
		Cfg:      cfg,
		Identity: identity.New(authURL),
		Gateway:  gateway.New(backendSrv.URL, staticTokens{}),
		State:    state.NewStore(),
		EvLog:    telegram.NewEventLogger(b, cfg),
	})
	return h, b
}

func activeSession() *domain.Session {
	return &domain.Session{ChatID: testChatID, Email: "w@example.com", RefreshToken: "rt-1"}
}

func TestWithdrawalDetailsSuccessRefreshesSlices(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	gen := h.state.Activate(testChatID)
	require.True(t, h.state.SetProfile(testChatID, gen, &domain.UserProfile{
		AvailableBalance: decimal.RequireFromString("10"),
	}))
	h.state.SetInput(testChatID, state.InputState{
		Mode:   state.InputWithdrawDetails,
		Amount: decimal.RequireFromString("5"),
		Method: domain.MethodBkash,
	})

	h.handleWithdrawalDetailsText(context.Background(), b, activeSession(), testChatID, "01711111111")

	// One request, then the slices the action affects are re-fetched.
	assert.Equal(t, 1, backend.count("/api/request-payment"))
	assert.Equal(t, 1, backend.count("/api/dashboard"))
	assert.Equal(t, 1, backend.count("/api/withdrawal-history"))
	assert.Equal(t, state.InputState{}, h.state.Input(testChatID))
}

func TestWithdrawalDetailsLocalRejectMakesNoCalls(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	gen := h.state.Activate(testChatID)
	require.True(t, h.state.SetProfile(testChatID, gen, &domain.UserProfile{
		AvailableBalance: decimal.RequireFromString("10"),
	}))
	h.state.SetInput(testChatID, state.InputState{
		Mode:   state.InputWithdrawDetails,
		Amount: decimal.RequireFromString("5"),
		Method: domain.MethodBkash,
	})

	h.handleWithdrawalDetailsText(context.Background(), b, activeSession(), testChatID, "   ")

	assert.Equal(t, 0, backend.total())
	// The form stays open for a corrected entry.
	assert.Equal(t, state.InputWithdrawDetails, h.state.Input(testChatID).Mode)
}

func TestWithdrawalAmountBelowMinimumMakesNoCalls(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	gen := h.state.Activate(testChatID)
	require.True(t, h.state.SetProfile(testChatID, gen, &domain.UserProfile{
		AvailableBalance: decimal.RequireFromString("10"),
	}))
	h.state.SetInput(testChatID, state.InputState{Mode: state.InputWithdrawAmount})

	h.handleWithdrawalAmountText(context.Background(), b, testChatID, "4.99")

	assert.Equal(t, 0, backend.total())
	assert.Equal(t, state.InputWithdrawAmount, h.state.Input(testChatID).Mode)
}

func TestSubmissionSuccessRefreshesProfile(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	h.state.SetInput(testChatID, state.InputState{Mode: state.InputSubmission, TaskID: "t1"})

	h.handleSubmissionText(context.Background(), b, activeSession(), testChatID, "done, see screenshot")

	assert.Equal(t, 1, backend.count("/api/submit-task"))
	assert.Equal(t, 1, backend.count("/api/dashboard"))
	assert.Equal(t, state.InputState{}, h.state.Input(testChatID))
}

func TestSubmissionLocalRejectMakesNoCalls(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	h.state.SetInput(testChatID, state.InputState{Mode: state.InputSubmission, TaskID: "t1"})

	h.handleSubmissionText(context.Background(), b, activeSession(), testChatID, "   \n")

	assert.Equal(t, 0, backend.total())
	assert.Equal(t, state.InputSubmission, h.state.Input(testChatID).Mode)
}

func TestSlashPasswordReachesSignIn(t *testing.T) {
	var gotPassword string
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotPassword = body["password"]
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "INVALID_LOGIN_CREDENTIALS"})
	}))
	defer auth.Close()

	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, auth.URL)

	h.state.SetInput(testChatID, state.InputState{Mode: state.InputSignInPassword, Email: "w@example.com"})

	update := &models.Update{Message: &models.Message{
		ID:   7,
		Text: "/secret1",
		Chat: models.Chat{ID: testChatID, Type: "private"},
	}}
	h.HandleText(context.Background(), b, update)

	// A password starting with a slash is still a password.
	assert.Equal(t, "/secret1", gotPassword)
	assert.Equal(t, state.InputSignInEmail, h.state.Input(testChatID).Mode)
}

func TestUnknownCommandIsDropped(t *testing.T) {
	backend := newBackendRecorder()
	h, b := newTestHandler(t, backend, "http://auth.invalid")

	update := &models.Update{Message: &models.Message{
		ID:   7,
		Text: "/frobnicate",
		Chat: models.Chat{ID: testChatID, Type: "private"},
	}}
	h.HandleText(context.Background(), b, update)

	assert.Equal(t, 0, backend.total())
	assert.Equal(t, state.InputNone, h.state.Input(testChatID).Mode)
}
