//go:build unit
// +build unit

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettingBackend struct {
	Endpoint string `toml:"endpoint"`
	Timeout  int    `toml:"timeout"`
}

type testSettingColors struct {
	Names []string `toml:"names"`
}

func TestRegisterSettings(t *testing.T) {
	s := registeredSettings()
	assert.Equal(t, 2, len(s.ComponentSetting))
	assert.Equal(t, []string{"backend", "colors"}, s.ComponentNames())
}

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantError bool
		want      map[string]interface{}
	}{
		{
			name: "empty keeps defaults",
			in:   "",
			want: map[string]interface{}{
				"backend": &testSettingBackend{Endpoint: "http://localhost:8080", Timeout: 30},
				"colors":  &testSettingColors{Names: []string{}},
			},
		},
		{
			name: "partial setting",
			in: heredoc.Doc(`
				[com.backend]
				timeout = 5
			`),
			want: map[string]interface{}{
				"backend": &testSettingBackend{Endpoint: "http://localhost:8080", Timeout: 5},
				"colors":  &testSettingColors{Names: []string{}},
			},
		},
		{
			name: "unregistered component is kept as a map",
			in: heredoc.Doc(`
				[com.colors]
				names = ["seismic", "gray"]

				[com.extra]
				flag = true
			`),
			want: map[string]interface{}{
				"backend": &testSettingBackend{Endpoint: "http://localhost:8080", Timeout: 30},
				"colors":  &testSettingColors{Names: []string{"seismic", "gray"}},
				"extra":   map[string]interface{}{"flag": true},
			},
		},
		{
			name:      "broken toml",
			in:        "[com.backend",
			wantError: true,
		},
		{
			name: "wrong type",
			in: heredoc.Doc(`
				[com.backend]
				timeout = "soon"
			`),
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := registeredSettings()
			err := s.parseSetting(tt.in)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.ComponentSetting)
		})
	}
}

func TestParseSettingFromPath(t *testing.T) {
	ResetSetting()
	RegisterSetting("backend", &testSettingBackend{Endpoint: "http://localhost:8080", Timeout: 30})

	path := filepath.Join(t.TempDir(), "setting.toml")
	require.NoError(t, os.WriteFile(path, []byte("[com.backend]\nendpoint = \"https://qpu.example.com\"\n"), 0644))
	require.NoError(t, ParseSettingFromPath(path))

	v, ok := GetComponentSetting("backend")
	require.True(t, ok)
	assert.Equal(t, &testSettingBackend{Endpoint: "https://qpu.example.com", Timeout: 30}, v)

	_, ok = GetComponentSetting("missing")
	assert.False(t, ok)

	assert.Error(t, ParseSettingFromPath(path+".missing"))
}

func registeredSettings() *Setting {
	ns := newSetting()
	ns.registerSetting("backend", &testSettingBackend{
		Endpoint: "http://localhost:8080",
		Timeout:  30,
	})
	ns.registerSetting("colors", &testSettingColors{
		Names: []string{},
	})
	return ns
}
