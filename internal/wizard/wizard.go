// Package wizard models the multi-step submission flow a front end drives:
// upload a photo, configure caption / styles / placement, run generation,
// show the result. It owns two delicate resources on the client's behalf:
// the in-flight upload (starting a new one aborts the previous) and the
// optimistic local preview (released exactly once when superseded or torn
// down). A generation counter invalidates callbacks from aborted uploads so
// stale completions can never clobber newer state.
package wizard

import (
	"context"
	"errors"
	"sync"

	"kuugen/internal/catalog"
	"kuugen/internal/domain"
	"kuugen/internal/imagegen"
)

// Step is the wizard's current stage.
type Step int

const (
	StepUpload Step = iota
	StepConfigure
	StepGenerate
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepConfigure:
		return "configure"
	case StepGenerate:
		return "generate"
	case StepResult:
		return "result"
	}
	return "unknown"
}

// Uploader pushes the raw source image to object storage and returns the
// public URL the generation request will reference.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// Generator runs one generation submission end to end.
type Generator interface {
	Generate(ctx context.Context, sourceURL string, sel imagegen.Selection) (*domain.GenerationResult, error)
}

// ErrNotReady is returned when an operation is invoked in a step that does
// not allow it, for example generating before the upload has confirmed.
var ErrNotReady = errors.New("wizard: step not ready for this operation")

// Machine is the submission state machine. All methods are safe for
// concurrent use; upload completions are applied on the machine's own
// goroutine-free critical section.
type Machine struct {
	uploader  Uploader
	generator Generator
	catalogs  *catalog.Catalogs

	mu           sync.Mutex
	step         Step
	gen          uint64
	cancelUpload context.CancelFunc
	preview      Preview
	selection    imagegen.Selection
	result       *domain.GenerationResult
	lastErr      error
}

// New builds a machine at the upload step.
func New(uploader Uploader, generator Generator, cats *catalog.Catalogs) *Machine {
	return &Machine{
		uploader:  uploader,
		generator: generator,
		catalogs:  cats,
		step:      StepUpload,
	}
}

// Step returns the current stage.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Preview returns the current two-phase preview value.
func (m *Machine) Preview() Preview {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preview
}

// Result returns the confirmed generation result, nil before StepResult.
func (m *Machine) Result() *domain.GenerationResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Err returns the most recent operation error, cleared on each new attempt.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// StartUpload begins uploading the picked file. Any upload already in
// flight is aborted first and its completion discarded; the previous local
// preview is released before the new one is installed. The returned channel
// receives the upload outcome once and is then closed, so callers (and
// tests) can wait for settlement without polling.
func (m *Machine) StartUpload(ctx context.Context, local *LocalHandle, filename, contentType string, data []byte) <-chan error {
	done := make(chan error, 1)

	m.mu.Lock()
	if m.cancelUpload != nil {
		m.cancelUpload()
		m.cancelUpload = nil
	}
	m.preview.Local.Release()
	m.gen++
	myGen := m.gen

	uploadCtx, cancel := context.WithCancel(ctx)
	m.cancelUpload = cancel
	m.preview = Preview{Local: local}
	m.result = nil
	m.lastErr = nil
	m.step = StepUpload
	m.mu.Unlock()

	go func() {
		defer close(done)
		url, err := m.uploader.Upload(uploadCtx, filename, contentType, data)
		cancel()

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.gen != myGen {
			// A newer upload superseded this one; the superseding call
			// already released our local handle. Drop the outcome.
			done <- context.Canceled
			return
		}
		m.cancelUpload = nil
		if err != nil {
			m.lastErr = err
			m.preview.Local.Release()
			m.preview = Preview{}
			done <- err
			return
		}
		m.preview.Remote = url
		m.step = StepConfigure
		done <- nil
	}()

	return done
}

// Configure records the user's selection and, when it is complete against
// the catalogs, advances to the generate step. An incomplete selection is
// stored but the machine stays at configure.
func (m *Machine) Configure(sel imagegen.Selection) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.step < StepConfigure {
		return false
	}
	m.selection = sel
	if sel.Complete(m.catalogs) {
		m.step = StepGenerate
		return true
	}
	m.step = StepConfigure
	return false
}

// Generate runs the submission. On success the machine advances to the
// result step; on failure it returns to configure so the user can adjust
// and retry.
func (m *Machine) Generate(ctx context.Context) (*domain.GenerationResult, error) {
	m.mu.Lock()
	if m.step != StepGenerate || m.preview.Remote == "" {
		m.mu.Unlock()
		return nil, ErrNotReady
	}
	source := m.preview.Remote
	sel := m.selection
	myGen := m.gen
	m.lastErr = nil
	m.mu.Unlock()

	res, err := m.generator.Generate(ctx, source, sel)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != myGen {
		return nil, context.Canceled
	}
	if err != nil {
		m.lastErr = err
		m.step = StepConfigure
		return nil, err
	}
	m.result = res
	m.step = StepResult
	return res, nil
}

// Back steps from the result back to configure, keeping the confirmed
// upload and selection so the user can tweak and regenerate.
func (m *Machine) Back() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.step == StepResult || m.step == StepGenerate {
		m.step = StepConfigure
		m.result = nil
	}
}

// Reset aborts any in-flight upload, releases the local preview and returns
// the machine to a fresh upload step.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.abortLocked()
	m.selection = imagegen.Selection{}
	m.step = StepUpload
}

// Teardown aborts everything; called when the hosting surface goes away.
// The machine must not be used afterwards.
func (m *Machine) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.abortLocked()
}

func (m *Machine) abortLocked() {
	if m.cancelUpload != nil {
		m.cancelUpload()
		m.cancelUpload = nil
	}
	m.preview.Local.Release()
	m.gen++
	m.preview = Preview{}
	m.result = nil
	m.lastErr = nil
}
