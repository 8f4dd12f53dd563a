// Package desktop connects a deployment to the local desktop session:
// the system clipboard and the default browser.
package desktop

import (
	"io"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/meigma/ipfsdeploy/core"
)

// Compile-time interface implementation checks.
var (
	_ core.Clipboard = Clipboard{}
	_ core.Browser   = Browser{}
)

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// WriteText implements core.Clipboard. It fails on headless systems with no
// clipboard utility installed.
func (Clipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// openURL launches the platform handler for a URL.
var openURL = browser.OpenURL

// browserMu guards the launcher's package-level output writers.
var browserMu sync.Mutex

// Browser opens URLs with the platform's default handler.
type Browser struct {
	// Output receives the launcher's stdout and stderr. Nil discards it.
	Output io.Writer
}

// Open implements core.Browser. The launcher's writers are package globals,
// so Open holds them for the duration of the launch and restores them after.
func (b Browser) Open(url string) error {
	out := b.Output
	if out == nil {
		out = io.Discard
	}

	browserMu.Lock()
	defer browserMu.Unlock()

	stdout, stderr := browser.Stdout, browser.Stderr
	defer func() {
		browser.Stdout, browser.Stderr = stdout, stderr
	}()
	browser.Stdout, browser.Stderr = out, out

	return openURL(url)
}
