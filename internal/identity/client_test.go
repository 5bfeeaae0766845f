package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/signin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "w@example.com", body["email"])
		assert.Equal(t, "hunter22", body["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"email":         "w@example.com",
			"refresh_token": "rt-1",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.SignIn(context.Background(), "w@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "w@example.com", result.Email)
	assert.Equal(t, "rt-1", result.RefreshToken)
}

func TestSignInProviderErrorIsVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "INVALID_LOGIN_CREDENTIALS"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SignIn(context.Background(), "w@example.com", "wrong")
	require.Error(t, err)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
	assert.Equal(t, "INVALID_LOGIN_CREDENTIALS", perr.Message)
	assert.Equal(t, "INVALID_LOGIN_CREDENTIALS", perr.Error())
}

func TestTokenExchange(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v1/token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh_token", body["grant_type"])
		assert.Equal(t, "rt-1", body["refresh_token"])

		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 3600})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Token(context.Background(), "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Tokens are never cached.
	_, err = c.Token(context.Background(), "rt-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTokenExchangeRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Token(context.Background(), "rt-1")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
}

func TestUpdatePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/token":
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
		case "/v1/password":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "newpass", body["new_password"])
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.UpdatePassword(context.Background(), "rt-1", "newpass"))
}

func TestUpdatePasswordSurfacesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/token" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "WEAK_PASSWORD: should be at least 6 characters"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.UpdatePassword(context.Background(), "rt-1", "123")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "WEAK_PASSWORD: should be at least 6 characters", perr.Message)
}
