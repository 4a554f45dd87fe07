//go:build unit
// +build unit

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAsset(t *testing.T) {
	circuit, err := GetAsset("bell_pair.json")
	assert.Nil(t, err)
	assert.Contains(t, circuit, `"num_qubits": 2`)

	_, err = GetAsset("missing.json")
	assert.Error(t, err)
}

func TestFileFormat(t *testing.T) {
	assert.Equal(t, "toml", FileFormat("problems/max_cut.TOML"))
	assert.Equal(t, "json", FileFormat("a.b.json"))
	assert.Equal(t, "", FileFormat("noext"))
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		port    string
		want    string
		wantErr string
	}{
		{name: "ok", host: "localhost", port: "8080", want: "localhost:8080"},
		{name: "wrong host", host: "hogehoge^^^-server.com", port: "23413",
			wantErr: "hogehoge^^^-server.com is an invalid host name"},
		{name: "wrong port", host: "hogehoge-server.com", port: "-23413",
			wantErr: "-23413 is an invalid port number"},
		{name: "port out of range", host: "hogehoge-server.com", port: "70000",
			wantErr: "70000 is not a port number within the allowed range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, err := ValidAddress(tt.host, tt.port)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, "", address)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, address)
		})
	}
}

func TestValidEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
		wantErr  bool
	}{
		{endpoint: "http://localhost:8080", want: "http://localhost:8080"},
		{endpoint: "https://qpu.example.com/api/", want: "https://qpu.example.com/api"},
		{endpoint: "localhost:8080", wantErr: true},
		{endpoint: "ftp://example.com", wantErr: true},
		{endpoint: "http://", wantErr: true},
		{endpoint: "http://bad^host:80", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("endpoint %q", tt.endpoint), func(t *testing.T) {
			got, err := ValidEndpoint(tt.endpoint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, IsDirWritable(dir))

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.EqualError(t, IsDirWritable(file), fmt.Sprintf("%s is not a directory", file))

	missing := filepath.Join(dir, "missing")
	assert.EqualError(t, IsDirWritable(missing), fmt.Sprintf("directory does not exist: %s", missing))
}

func TestReadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setting.toml")
	require.NoError(t, os.WriteFile(path, []byte("[com]\n"), 0644))
	s, err := ReadSettingsFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[com]\n", s)

	_, err = ReadSettingsFile(path + ".missing")
	assert.Error(t, err)
}
