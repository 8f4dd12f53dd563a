package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meigma/ipfsdeploy"
)

func TestConsole_Lines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newConsole(&out, false)

	c.Start("Uploading and pinning to infura...")
	c.Succeed("It's pinned to infura now with hash:")
	c.Info("Qm123")
	c.Warn("clipboard: no clipboard utility")
	c.Fail("Failed to deploy.")

	// a buffer is not a terminal, so lines are unstyled
	assert.Equal(t, "• Uploading and pinning to infura...\n"+
		"✔ It's pinned to infura now with hash:\n"+
		"  Qm123\n"+
		"⚠ clipboard: no clipboard utility\n"+
		"✖ Failed to deploy.\n", out.String())
}

func TestConsole_ProgressBarPerPinner(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newConsole(&out, true)

	c.Progress(ipfsdeploy.ProgressEvent{Pinner: "pinata", BytesSent: 10, TotalBytes: 100})
	first := c.bar
	c.Progress(ipfsdeploy.ProgressEvent{Pinner: "pinata", BytesSent: 100, TotalBytes: 100})
	assert.Same(t, first, c.bar)

	c.Succeed("done")
	assert.Nil(t, c.bar)

	// late events for a finished upload are dropped
	c.Progress(ipfsdeploy.ProgressEvent{Pinner: "pinata", BytesSent: 120, TotalBytes: 120})
	assert.Nil(t, c.bar)

	c.Progress(ipfsdeploy.ProgressEvent{Pinner: "other", BytesSent: 1, TotalBytes: 2})
	assert.NotNil(t, c.bar)
	assert.Contains(t, out.String(), "✔ done")
}
