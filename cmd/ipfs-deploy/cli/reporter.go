package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/meigma/ipfsdeploy"
)

var _ ipfsdeploy.Reporter = (*console)(nil)

// console prints deployment steps and upload progress to the terminal.
// Bars and step lines share one writer, so a step line first finishes the
// active bar.
type console struct {
	out      io.Writer
	progress bool

	mu     sync.Mutex
	bar    *progressbar.ProgressBar
	pinner string

	start   lipgloss.Style
	succeed lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
}

func newConsole(out io.Writer, progress bool) *console {
	r := lipgloss.NewRenderer(out)
	return &console{
		out:      out,
		progress: progress,
		start:    r.NewStyle().Foreground(lipgloss.Color("12")),
		succeed:  r.NewStyle().Foreground(lipgloss.Color("10")),
		fail:     r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("11")),
		info:     r.NewStyle().Faint(true),
	}
}

func (c *console) Start(msg string)   { c.line(c.start, "•", msg) }
func (c *console) Succeed(msg string) { c.line(c.succeed, "✔", msg) }
func (c *console) Fail(msg string)    { c.line(c.fail, "✖", msg) }
func (c *console) Warn(msg string)    { c.line(c.warn, "⚠", msg) }

func (c *console) Info(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finishBar()
	fmt.Fprintln(c.out, "  "+c.info.Render(msg))
}

func (c *console) line(style lipgloss.Style, symbol, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finishBar()
	fmt.Fprintln(c.out, style.Render(symbol)+" "+msg)
}

// Progress implements ipfsdeploy.ProgressCallback with one bar per pinner.
func (c *console) Progress(event ipfsdeploy.ProgressEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pinner != event.Pinner {
		c.finishBar()
		c.bar = newProgressBar(c.out, event.TotalBytes, "Uploading to "+event.Pinner)
		c.pinner = event.Pinner
	}
	if c.bar == nil {
		// late event after the step ended
		return
	}
	if event.TotalBytes > 0 && c.bar.GetMax64() != event.TotalBytes {
		c.bar.ChangeMax64(event.TotalBytes)
	}
	//nolint:errcheck // progress bar errors are not critical
	c.bar.Set64(event.BytesSent)
}

// finishBar ends the active bar. Callers hold mu.
func (c *console) finishBar() {
	if c.bar == nil {
		return
	}
	//nolint:errcheck // progress bar errors are not critical
	c.bar.Finish()
	c.bar = nil
}
