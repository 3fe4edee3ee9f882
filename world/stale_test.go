package world

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/config"
)

func newLoggedWorld(t *testing.T) (*World, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Maze = config.Maze{Width: 6, Length: 5}
	w, err := New(cfg,
		WithRand(rand.New(rand.NewSource(5))),
		WithLogger(log.New(&buf, "", 0)),
	)
	require.NoError(t, err)

	return w, &buf
}

func TestInstall_DiscardsAfterRebuild(t *testing.T) {
	w, buf := newLoggedWorld(t)
	target := w.Maze().FarthestFree(w.Agent())

	res, ok := w.search(target)
	require.True(t, ok)
	require.NoError(t, w.Rebuild(6, 5))

	assert.False(t, w.install(res, target))
	assert.Nil(t, w.Route())
	assert.Contains(t, buf.String(), "world: discarding stale path")
}

func TestInstall_DiscardsAfterAgentMoved(t *testing.T) {
	w, buf := newLoggedWorld(t)
	target := w.Maze().FarthestFree(w.Agent())
	_, ok := w.RequestPath(target)
	require.True(t, ok)

	res, ok := w.search(w.Maze().StartPosition)
	require.True(t, ok)
	_, moved := w.Step()
	require.True(t, moved)
	before := w.Route()

	assert.False(t, w.install(res, w.Maze().StartPosition))
	assert.Equal(t, before, w.Route())
	assert.Contains(t, buf.String(), "world: discarding stale path")
}

func TestInstall_FreshResult(t *testing.T) {
	w, buf := newLoggedWorld(t)
	target := w.Maze().FarthestFree(w.Agent())

	res, ok := w.search(target)
	require.True(t, ok)
	assert.True(t, w.install(res, target))
	assert.Equal(t, res.path.Positions()[1:], w.Route())
	assert.NotContains(t, buf.String(), "discarding")
}
