package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tagvault/internal/config"
	"tagvault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("TAG_FILE_PATH", filepath.Join(t.TempDir(), "tag.json"))
	require.NoError(t, config.Init())

	router, err := SetupRouter()
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestWalletLifecycleOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	// Probe before any wallet exists
	resp, err := http.Get(server.URL + "/wallet/probe")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[model.ProbeResponse](t, resp).Recognized)

	// Create a seed wallet
	resp = postJSON(t, server.URL+"/wallet/create", model.CreateRequest{PIN: "1234", Kind: "seed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[model.CreateResponse](t, resp)
	assert.True(t, created.Success)
	assert.Equal(t, "master-seed", created.Kind)
	assert.NotEmpty(t, created.SolanaAddress)
	assert.NotEmpty(t, created.EthereumAddress)
	assert.NotEmpty(t, created.Mnemonic)

	// Probe now recognizes the tag
	resp, err = http.Get(server.URL + "/wallet/probe")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.True(t, decode[model.ProbeResponse](t, resp).Recognized)

	// Read back with the right PIN
	resp = postJSON(t, server.URL+"/wallet/read", model.ReadRequest{PIN: "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	read := decode[model.ReadResponse](t, resp)
	assert.Equal(t, created.SolanaAddress, read.SolanaAddress)
	assert.Equal(t, created.EthereumAddress, read.EthereumAddress)
}

func TestErrorTaxonomyOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	// Reading an absent tag is a format error
	resp := postJSON(t, server.URL+"/wallet/read", model.ReadRequest{PIN: "1234"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "format_error", decode[model.ErrorResponse](t, resp).Code)

	resp = postJSON(t, server.URL+"/wallet/create", model.CreateRequest{PIN: "1234", Kind: "seed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Wrong PIN is an authentication error
	resp = postJSON(t, server.URL+"/wallet/read", model.ReadRequest{PIN: "4321"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "authentication_error", decode[model.ErrorResponse](t, resp).Code)

	// Creating over an existing wallet is a conflict
	resp = postJSON(t, server.URL+"/wallet/create", model.CreateRequest{PIN: "1234", Kind: "key"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "tag_not_empty", decode[model.ErrorResponse](t, resp).Code)
}

func TestInputValidationOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	// Unknown kind
	resp := postJSON(t, server.URL+"/wallet/create", model.CreateRequest{PIN: "1234", Kind: "paper"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "input_error", decode[model.ErrorResponse](t, resp).Code)

	// Empty PIN
	resp = postJSON(t, server.URL+"/wallet/create", model.CreateRequest{PIN: "", Kind: "seed"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong method
	getResp, err := http.Get(server.URL + "/wallet/create")
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, getResp.StatusCode)
}
