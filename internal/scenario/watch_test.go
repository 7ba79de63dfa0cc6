package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "default.yaml")
	late := filepath.Join(dir, "austral.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("version: \"1\"\n"), 0o644))

	var changed []string
	w := NewWatcher([]string{existing, late}, time.Minute, func(p string) {
		changed = append(changed, p)
	})

	// priming never fires callbacks
	w.scanAll(true)
	assert.Empty(t, changed)

	// unchanged files stay quiet
	w.scanAll(false)
	assert.Empty(t, changed)

	// touching an existing file fires
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(existing, future, future))
	w.scanAll(false)
	assert.Equal(t, []string{existing}, changed)

	// a file appearing after startup fires too
	require.NoError(t, os.WriteFile(late, []byte("notes: added later\n"), 0o644))
	w.scanAll(false)
	assert.Equal(t, []string{existing, late}, changed)
}
