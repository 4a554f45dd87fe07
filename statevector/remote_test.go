//go:build unit
// +build unit

package statevector

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteBackend(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{name: "http", endpoint: "http://localhost:8080"},
		{name: "https with trailing slash", endpoint: "https://example.com/api/"},
		{name: "no scheme", endpoint: "localhost:8080", wantErr: true},
		{name: "unsupported scheme", endpoint: "ftp://example.com", wantErr: true},
		{name: "empty", endpoint: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRemoteSetting()
			s.Endpoint = tt.endpoint
			b, err := NewRemoteBackend(s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultRemoteBackend, b.Name())
		})
	}
}

func TestRemoteBackendStatevector(t *testing.T) {
	var gotBody []byte
	var gotAuth, gotAgent, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","statevector":[[0.7071,0],[0,0],[0,0],[0.7071,-0.0]]}`))
	}))
	defer srv.Close()

	s := NewRemoteSetting()
	s.Endpoint = srv.URL
	s.Backend = "aer_simulator"
	s.APIKey = "secret"
	s.UserAgent = "qdeck/v0.3.0"
	b, err := NewRemoteBackend(s)
	require.NoError(t, err)

	c := &Circuit{NumQubits: 2, Gates: []Gate{
		{Name: "h", Qubits: []int{0}},
		{Name: "cx", Qubits: []int{0, 1}},
		{Name: "rz", Qubits: []int{1}, Params: []float64{0.5}},
	}}
	res, err := b.Statevector(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/statevector", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "qdeck/v0.3.0", gotAgent)

	var req map[string]interface{}
	require.NoError(t, jsonIter.Unmarshal(gotBody, &req))
	assert.Equal(t, res.ID, req["id"])
	assert.Equal(t, "aer_simulator", req["backend"])
	assert.EqualValues(t, 2, req["num_qubits"])
	gates, ok := req["gates"].([]interface{})
	require.True(t, ok)
	require.Len(t, gates, 3)
	assert.Equal(t, map[string]interface{}{"name": "rz", "qubits": []interface{}{float64(1)}, "params": []interface{}{0.5}}, gates[2])
	assert.NotContains(t, gates[0], "params")

	assert.Equal(t, "aer_simulator", res.Backend)
	assert.Equal(t, []complex128{0.7071, 0, 0, 0.7071}, res.Amplitudes)
}

func TestRemoteBackendErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "no key"},
		{name: "missing statevector", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "bad amplitude", status: http.StatusOK, body: `{"statevector":[[1]]}`},
		{name: "not json", status: http.StatusOK, body: `statevector`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewRemoteSetting()
			s.Endpoint = srv.URL
			b, err := NewRemoteBackend(s)
			require.NoError(t, err)
			_, err = b.Statevector(context.Background(), &Circuit{NumQubits: 1})
			assert.Error(t, err)
		})
	}
}

func TestRemoteBackendAmplitudeCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"statevector":[[1,0],[0,0],[0,0],[0,0]]}`))
	}))
	defer srv.Close()

	s := NewRemoteSetting()
	s.Endpoint = srv.URL
	b, err := NewRemoteBackend(s)
	require.NoError(t, err)

	c := &Circuit{NumQubits: 1}
	_, err = b.Statevector(context.Background(), c)
	assert.ErrorIs(t, err, ErrAmplitudeCount)

	res, err := Get(context.Background(), b, c, DefaultDecimals)
	assert.ErrorIs(t, err, ErrAmplitudeCount)
	assert.Nil(t, res)
}

type fixedBackend struct {
	amps []complex128
}

func (f fixedBackend) Name() string { return "fixed" }

func (f fixedBackend) Statevector(ctx context.Context, c *Circuit) (*Result, error) {
	return newResult(f.Name(), f.amps), nil
}

func TestGetChecksAmplitudeCount(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	_, err := Get(context.Background(), fixedBackend{amps: []complex128{1, 0}}, c, -1)
	assert.ErrorIs(t, err, ErrAmplitudeCount)

	res, err := Get(context.Background(), fixedBackend{amps: []complex128{1, 0, 0, 0}}, c, -1)
	require.NoError(t, err)
	assert.Len(t, res.Amplitudes, 4)
}

func TestDecodeResponse(t *testing.T) {
	amps, err := decodeResponse([]byte(`{"statevector":[[1,0],[0,-1]],"extra":{"a":[1,2]}}`))
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, -1i}, amps)
}
