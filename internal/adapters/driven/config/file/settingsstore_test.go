package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

func TestNewSettingsStore_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewSettingsStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".academic-assistant", "config.toml"), store.Path())
}

func TestSettingsStore_LoadMissingFile(t *testing.T) {
	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[dataset]
path = "/srv/dhbw/db.json"

[server]
port = 8080

[log]
verbose = true

[unknown]
ignored = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "/srv/dhbw/db.json", settings.Dataset.Path)
	assert.Equal(t, 8080, settings.Server.Port)
	assert.True(t, settings.Log.Verbose)
}

func TestSettingsStore_LoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nverbose = true\n"), 0600))

	store, _ := NewSettingsStore(path)
	settings, err := store.Load()

	require.NoError(t, err)
	assert.True(t, settings.Log.Verbose)
	assert.Equal(t, 0, settings.Server.Port)
	assert.Empty(t, settings.Dataset.Path)
}

func TestSettingsStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed toml", content: "[server\nport = 1"},
		{name: "wrong type", content: "[server]\nport = \"eighty\""},
		{name: "port out of range", content: "[server]\nport = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			store, _ := NewSettingsStore(path)
			_, err := store.Load()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	want := domain.Settings{
		Dataset: domain.DatasetSettings{Path: "snap.db"},
		Server:  domain.ServerSettings{Port: 9000},
		Log:     domain.LogSettings{Verbose: true},
	}
	require.NoError(t, store.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	store, _ := NewSettingsStore(path)

	err := store.Save(domain.Settings{Server: domain.ServerSettings{Port: -1}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFlatten(t *testing.T) {
	values, err := Flatten(domain.Settings{
		Dataset: domain.DatasetSettings{Path: "db.json"},
		Server:  domain.ServerSettings{Port: 8080},
	})

	require.NoError(t, err)
	assert.Equal(t, "db.json", values["dataset.path"])
	assert.EqualValues(t, 8080, values["server.port"])
	assert.Equal(t, false, values["log.verbose"])
}
