package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texttv/internal/eventbus"
)

func TestLoadMissingWritesDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	svc := NewConfigServiceWithFs(fsys, "/home/u/.config/texttv/config.toml", nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.StartPage)
	assert.Equal(t, "iso-8859-1", cfg.Source.Charset)
	assert.Equal(t, 10, cfg.UI.HistoryLimit)

	exists, err := afero.Exists(fsys, "/home/u/.config/texttv/config.toml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.toml", []byte(`
start_page = 300

[source]
timeout_seconds = 3
pages_dir = "/srv/pages"

[ui]
splash_seconds = 0
`), 0o644))

	cfg, err := NewConfigServiceWithFs(fsys, "/cfg.toml", nil).Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.StartPage)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout())
	assert.Equal(t, "/srv/pages", cfg.Source.PagesDir)
	assert.Equal(t, "http://svt.se/texttv/%d.html", cfg.Source.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.UI.SplashDuration())
	assert.True(t, cfg.UI.ShowClock)
}

func TestLoadNormalizesOutOfRange(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.toml", []byte("start_page = 42\n[ui]\nhistory_limit = -1\n"), 0o644))

	cfg, err := NewConfigServiceWithFs(fsys, "/cfg.toml", nil).Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.StartPage)
	assert.Equal(t, 10, cfg.UI.HistoryLimit)
}

func TestLoadInvalidToml(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.toml", []byte("start_page = [oops"), 0o644))

	_, err := NewConfigServiceWithFs(fsys, "/cfg.toml", nil).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	svc := NewConfigServiceWithFs(fsys, "/a/b/config.toml", nil)

	cfg := DefaultConfig()
	cfg.StartPage = 377
	cfg.Source.CacheTTLSeconds = 5
	require.NoError(t, svc.Save(cfg))

	got, err := svc.LoadFromPath("/a/b/config.toml")
	require.NoError(t, err)
	assert.Equal(t, 377, got.StartPage)
	assert.Equal(t, 5*time.Second, got.Source.CacheTTL())
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigLoadedEvent)
	})

	svc := NewConfigServiceWithFs(afero.NewMemMapFs(), "/c.toml", bus)
	_, err := svc.Load()
	require.NoError(t, err)

	select {
	case ev := <-got:
		assert.Equal(t, "/c.toml", ev.Path)
		assert.Equal(t, 100, ev.StartPage)
	case <-time.After(time.Second):
		t.Fatal("no ConfigLoadedEvent")
	}
	assert.Equal(t, "/c.toml", svc.Path())
}
