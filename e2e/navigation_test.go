//go:build e2e && unix

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// newPagesApp starts texttv over a fixture with pages 100, 101 and 104
func newPagesApp(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	for _, n := range []int{100, 101, 104} {
		require.NoError(t, tf.WritePage(n, fmt.Sprintf(" SIDA-%d", n), " Rad två på sidan"))
	}

	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first page")
	return tf
}

func TestStartPageIsShown(t *testing.T) {
	t.Parallel()
	tf := newPagesApp(t)

	require.True(t, tf.SeePlain("SIDA-100"), "Should show page 100")
	require.True(t, tf.SeePlain("SVT Text"), "Should show the header")
}

func TestStartPageFlag(t *testing.T) {
	t.Parallel()
	tf := newPagesApp(t, "--page", "101")

	require.True(t, tf.SeePlain("SIDA-101"), "Should start on page 101")
}

func TestNextSkipsEmptyPages(t *testing.T) {
	t.Parallel()
	tf := newPagesApp(t, "--page", "101")

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyNext))
	require.True(t, tf.SeePlain("SIDA-104"), "n should skip the missing 102 and 103")

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyPrev))
	require.True(t, tf.SeePlain("SIDA-101"), "b should go back to 101")
}

func TestLatin1PageText(t *testing.T) {
	t.Parallel()
	tf := newPagesApp(t)

	require.True(t, tf.SeePlain("Rad två på sidan"), "Page text should be decoded from ISO-8859-1")
}
