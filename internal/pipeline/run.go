package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"
)

// RunStatus represents the phase a conversion run is in.
type RunStatus string

const (
	StatusCollecting RunStatus = "collecting"
	StatusConverting RunStatus = "converting"
	StatusPatching   RunStatus = "patching"
	StatusCopying    RunStatus = "copying"
	StatusCompleted  RunStatus = "completed"
	StatusFailed     RunStatus = "failed"
)

// Run tracks the state of a single documentation-to-wiki conversion.
type Run struct {
	mu sync.Mutex

	Source string `json:"source"`
	Wiki   string `json:"wiki"`

	Status RunStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	hashes map[string]string
	err    error
}

// Progress counts what a run has done so far.
type Progress struct {
	PagesTotal     int `json:"pages_total"`
	PagesConverted int `json:"pages_converted"`
	PagesCopied    int `json:"pages_copied"`
	FilesPatched   int `json:"files_patched"`
	ImagesTotal    int `json:"images_total"`
	ImagesCopied   int `json:"images_copied"`
	InternalLinks  int `json:"internal_links"`
}

func newRun(source, wiki string) *Run {
	now := time.Now()
	return &Run{
		Source:    source,
		Wiki:      wiki,
		Status:    StatusCollecting,
		Phase:     "collecting",
		StartedAt: now,
		UpdatedAt: now,
		hashes:    make(map[string]string),
	}
}

// SetStatus updates run status atomically.
func (r *Run) SetStatus(status RunStatus, phase string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = status
	r.Phase = phase
	r.UpdatedAt = time.Now()
}

// Fail marks the run failed in the given phase.
func (r *Run) Fail(phase string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = StatusFailed
	r.Phase = phase
	r.err = err
	r.UpdatedAt = time.Now()
}

// Err returns the error that failed the run, if any.
func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// SetTotals records how many pages and images were collected.
func (r *Run) SetTotals(pages, images int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Progress.PagesTotal = pages
	r.Progress.ImagesTotal = images
	r.UpdatedAt = time.Now()
}

// update applies fn to the progress counters under the lock.
func (r *Run) update(fn func(p *Progress)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.Progress)
	r.UpdatedAt = time.Now()
}

// RecordOutput stores the content hash of a written wiki file.
func (r *Run) RecordOutput(path string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hashes[path] = ContentHashHex(data)
}

// Hashes returns a copy of the content hash of every written file, keyed by path.
func (r *Run) Hashes() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.hashes))
	for k, v := range r.hashes {
		out[k] = v
	}
	return out
}

// Outputs returns the written file paths in sorted order.
func (r *Run) Outputs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.hashes))
	for p := range r.hashes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// RunSnapshot is a read-only, JSON-safe copy of run state.
type RunSnapshot struct {
	Source   string    `json:"source"`
	Wiki     string    `json:"wiki"`
	Status   RunStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
	Error    string    `json:"error,omitempty"`
	Elapsed  string    `json:"elapsed"`
}

// Snapshot returns a JSON-safe copy of the run state.
func (r *Run) Snapshot() RunSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := RunSnapshot{
		Source:   r.Source,
		Wiki:     r.Wiki,
		Status:   r.Status,
		Phase:    r.Phase,
		Progress: r.Progress,
		Elapsed:  r.UpdatedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
	}
	if r.err != nil {
		snap.Error = r.err.Error()
	}
	return snap
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
