package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Config controls whether progress is drawn and where
type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Manager owns the mpb container. A disabled manager hands out no-op bars.
type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// Bar is a single progress line
type Bar struct {
	bar     *mpb.Bar
	enabled bool
}

// NewManager creates a manager writing to config.Writer, stderr by default
func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	var writer io.Writer = os.Stderr
	if config.Writer != nil {
		writer = config.Writer
	}
	options := []mpb.ContainerOption{
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120 * time.Millisecond),
	}
	// mpb only renders to a terminal unless refresh is forced
	if config.Writer != nil {
		options = append(options, mpb.WithAutoRefresh())
	}

	return &Manager{
		container: mpb.New(options...),
		enabled:   true,
	}
}

// ReadBar tracks bytes read from a file of the given size
func (m *Manager) ReadBar(total int64, name string) *Bar {
	if !m.enabled || m.container == nil {
		return &Bar{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.NewPercentage("%.1f", decor.WCSyncSpace), " ✓"),
		),
	)
	return &Bar{bar: bar, enabled: true}
}

// Spinner shows an indeterminate line while waiting on a remote call
func (m *Manager) Spinner(name string) *Bar {
	if !m.enabled || m.container == nil {
		return &Bar{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddSpinner(0,
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " done"),
		),
	)
	return &Bar{bar: bar, enabled: true}
}

// ProxyReader wraps r so reads advance the bar
func (b *Bar) ProxyReader(r io.Reader) io.Reader {
	if !b.enabled || b.bar == nil {
		return r
	}
	return b.bar.ProxyReader(r)
}

// Done marks the bar complete
func (b *Bar) Done() {
	if b.enabled && b.bar != nil {
		b.bar.SetTotal(-1, true)
	}
}

// Abort stops the bar, leaving it on screen
func (b *Bar) Abort() {
	if b.enabled && b.bar != nil {
		b.bar.Abort(false)
	}
}

// Wait blocks until every bar has finished rendering
func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

// IsTTY reports whether writer is a character device
func IsTTY(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShow enables progress on an interactive stderr unless disabled
func ShouldShow(disabled bool) bool {
	return !disabled && IsTTY(os.Stderr)
}
