package chain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

func rpcServer(t *testing.T, calls *atomic.Int32, handle func(req rpcRequest) (int, map[string]interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		status, body := handle(req)
		if body == nil {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("upstream unavailable"))
			return
		}
		body["jsonrpc"] = "2.0"
		body["id"] = req.ID
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func newTestClient(url string) *RPCClient {
	return NewRPCClient(url, WithMaxRetries(2), WithRetryDelay(time.Millisecond))
}

func TestRPCClientAccountData(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		assert.Equal(t, "getAccountInfo", req.Method)
		return http.StatusOK, map[string]interface{}{
			"result": map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value": map[string]interface{}{
					"data":       []string{base64.StdEncoding.EncodeToString(payload), "base64"},
					"executable": false,
					"lamports":   1000,
					"owner":      solana.SystemProgramID.String(),
					"rentEpoch":  0,
					"space":      len(payload),
				},
			},
		}
	})
	defer server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	data, err := client.AccountData(context.Background(), solana.SystemProgramID)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRPCClientAccountNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		return http.StatusOK, map[string]interface{}{
			"result": map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value":   nil,
			},
		}
	})
	defer server.Close()

	_, err := newTestClient(server.URL).AccountData(context.Background(), solana.SystemProgramID)
	require.ErrorIs(t, err, ErrAddressNotFound)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRPCClientNetworkErrorAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		return http.StatusServiceUnavailable, nil
	})
	defer server.Close()

	_, err := newTestClient(server.URL).AccountData(context.Background(), solana.SystemProgramID)
	require.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrAddressNotFound)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRPCClientTokenBalance(t *testing.T) {
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		assert.Equal(t, "getTokenAccountBalance", req.Method)
		return http.StatusOK, map[string]interface{}{
			"result": map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value": map[string]interface{}{
					"amount":         "50000000",
					"decimals":       6,
					"uiAmount":       50.0,
					"uiAmountString": "50",
				},
			},
		}
	})
	defer server.Close()

	amount, err := newTestClient(server.URL).TokenBalance(context.Background(), solana.SystemProgramID)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), amount.Amount)
	assert.Equal(t, uint8(6), amount.Decimals)
}

func TestRPCClientTokenBalanceMissingAccount(t *testing.T) {
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		return http.StatusOK, map[string]interface{}{
			"error": map[string]interface{}{
				"code":    -32602,
				"message": "Invalid param: could not find account",
			},
		}
	})
	defer server.Close()

	_, err := newTestClient(server.URL).TokenBalance(context.Background(), solana.SystemProgramID)
	require.ErrorIs(t, err, ErrAddressNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRPCClientCancelledContext(t *testing.T) {
	var calls atomic.Int32
	server := rpcServer(t, &calls, func(req rpcRequest) (int, map[string]interface{}) {
		return http.StatusServiceUnavailable, nil
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewRPCClient(server.URL, WithMaxRetries(5), WithRetryDelay(time.Second))
	_, err := client.AccountData(ctx, solana.SystemProgramID)
	require.ErrorIs(t, err, ErrNetwork)
}

func TestParseAddress(t *testing.T) {
	key, err := ParseAddress(" 11111111111111111111111111111111 ")
	require.NoError(t, err)
	assert.Equal(t, solana.SystemProgramID, key)

	for _, input := range []string{"", "not-base58-0OIl", "abc"} {
		_, err := ParseAddress(input)
		assert.ErrorIs(t, err, ErrMalformedAddress, "input %q", input)
	}
}
