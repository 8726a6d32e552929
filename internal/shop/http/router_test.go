package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/internal/shop/store/drivers/sqlite"
	"github.com/marketloft/emporium/pkg/jwtx"
	"github.com/marketloft/emporium/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("router-test-secret")
	signer, err := jwtx.NewSignerHMAC("HS256", secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHMAC("HS256", secret, "emporium-test")
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "shop-service",
		Env:     "dev",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: verifier,
		Issuer:   "emporium-test",
		TokenTTL: time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.ProductService = &service.ProductService{Store: st}
	router.CartService = &service.CartService{Store: st}
	router.PurchaseService = &service.PurchaseService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func registerAndLogin(t *testing.T, srv *httptest.Server, username, password string) (RegisterResponse, string) {
	t.Helper()

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/v1/users", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reg RegisterResponse
	require.NoError(t, json.Unmarshal(raw, &reg))
	require.NotEmpty(t, reg.AccessToken)
	require.Equal(t, "bearer", reg.TokenType)

	return reg, reg.AccessToken
}

func TestRegisterThenLogin(t *testing.T) {
	srv := newTestServer(t)

	reg, _ := registerAndLogin(t, srv, "alice", "s3cret-pass")
	require.Equal(t, "alice", reg.User.Username)

	form := url.Values{"username": {"alice"}, "password": {"s3cret-pass"}}
	resp, err := http.Post(srv.URL+"/v1/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, int64(3600), token.ExpiresIn)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "alice", "s3cret-pass")

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	resp, err := http.Post(srv.URL+"/v1/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
}

func TestRegisterConflict(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "alice", "s3cret-pass")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/users", "", map[string]string{
		"username": "alice",
		"password": "other-pass",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/products", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/products", "not-a-token", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with wrong key", func(t *testing.T) {
		other, err := jwtx.NewSignerHMAC("HS256", []byte("a-different-secret"))
		require.NoError(t, err)
		forged, err := other.Sign(jwtx.NewAccessClaims("alice", "emporium-test", time.Hour, time.Now()))
		require.NoError(t, err)

		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/products", forged, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		signer, err := jwtx.NewSignerHMAC("HS256", []byte("router-test-secret"))
		require.NoError(t, err)
		expired, err := signer.Sign(jwtx.NewAccessClaims("alice", "emporium-test", time.Hour,
			time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/products", expired, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestProductCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	_, token := registerAndLogin(t, srv, "alice", "s3cret-pass")

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/v1/products", token, map[string]any{
		"name":        "Widget",
		"description": "A fine widget",
		"price":       9.99,
		"stock":       50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))
	require.NotEmpty(t, product.ID)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/v1/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []ProductResponse
	require.NoError(t, json.Unmarshal(raw, &products))
	require.Len(t, products, 1)

	resp, raw = doJSON(t, http.MethodPut, srv.URL+"/v1/products/"+product.ID, token, map[string]any{
		"name":  "Widget Pro",
		"price": 19.99,
		"stock": 25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated ProductResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.Equal(t, "Widget Pro", updated.Name)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/products/"+product.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/v1/products/"+product.ID, token, map[string]any{
		"name":  "Widget Pro",
		"price": 19.99,
		"stock": 25,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartAndPurchaseFlow(t *testing.T) {
	srv := newTestServer(t)
	reg, token := registerAndLogin(t, srv, "alice", "s3cret-pass")

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/v1/products", token, map[string]any{
		"name":  "Widget",
		"price": 9.99,
		"stock": 50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))

	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/v1/carts/"+reg.User.ID, token, map[string]any{
		"product_id": product.ID,
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item CartItemResponse
	require.NoError(t, json.Unmarshal(raw, &item))
	require.Equal(t, int64(3), item.Quantity)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/v1/carts/"+reg.User.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []CartItemResponse
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)

	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/v1/purchases/"+reg.User.ID, token, map[string]any{
		"total_price": 29.97,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var purchase PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &purchase))
	require.Equal(t, 29.97, purchase.TotalPrice)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/carts/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/v1/purchases/"+reg.User.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var purchases []PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &purchases))
	require.Len(t, purchases, 1)
}

func TestUserUpdateOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	reg, token := registerAndLogin(t, srv, "alice", "s3cret-pass")

	resp, raw := doJSON(t, http.MethodPut, srv.URL+"/v1/users/"+reg.User.ID, token, map[string]string{
		"username": "alice2",
		"password": "new-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated UserResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.Equal(t, "alice2", updated.Username)

	// The token asserts the old username, so it no longer resolves.
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/products", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	form := url.Values{"username": {"alice2"}, "password": {"new-pass"}}
	loginResp, err := http.Post(srv.URL+"/v1/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer loginResp.Body.Close()
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}

func TestListUsersIsPublic(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "alice", "s3cret-pass")

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/v1/users", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []UserResponse
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 1)
	require.Equal(t, "alice", users[0].Username)

	// Credential material must never appear on the wire.
	require.NotContains(t, string(raw), "password")
}
