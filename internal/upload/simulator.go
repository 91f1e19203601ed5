// Package upload fakes file uploads. No bytes are transferred anywhere;
// each file only runs a progress timer and, on completion, lands in an
// in-memory metadata list.
package upload

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/seamlessgov/govdash/internal/model"
)

// State of one simulated upload.
type State int

const (
	StatePending State = iota
	StateUploading
	StateComplete
)

// FileInfo describes a file handed to the simulator.
type FileInfo struct {
	Name string
	Size int64 // bytes
	Type string
}

type job struct {
	state    State
	progress float64 // 0..100
}

// Simulator advances each file's progress on its own timer. Progress state
// and the completed-file list are keyed by the file's own id, so concurrent
// batches cannot corrupt each other.
type Simulator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	now       func() time.Time
	interval  time.Duration
	hideDelay time.Duration

	files        []model.UploadedFile
	jobs         map[int64]*job
	lastID       int64
	batchMessage string
}

// NewSimulator creates a simulator with the given tick interval and the
// delay before a finished batch's progress indicator is hidden. The random
// source drives the per-tick progress increments.
func NewSimulator(rng *rand.Rand, now func() time.Time, interval, hideDelay time.Duration) *Simulator {
	if now == nil {
		now = time.Now
	}
	return &Simulator{
		rng:       rng,
		now:       now,
		interval:  interval,
		hideDelay: hideDelay,
		jobs:      make(map[int64]*job),
	}
}

// Upload starts a simulated upload for each file. The returned channel is
// closed once the whole batch has completed and the hide delay has passed.
func (s *Simulator) Upload(infos []FileInfo) <-chan struct{} {
	done := make(chan struct{})
	if len(infos) == 0 {
		close(done)
		return done
	}

	s.mu.Lock()
	// Timestamp-based ids, nudged forward so overlapping batches never
	// share an id.
	base := s.now().UnixMilli()
	if base <= s.lastID {
		base = s.lastID + 1
	}
	ids := make([]int64, len(infos))
	for i := range infos {
		ids[i] = base + int64(i)
		s.jobs[ids[i]] = &job{state: StatePending}
	}
	s.lastID = ids[len(ids)-1]
	s.mu.Unlock()

	var wg sync.WaitGroup
	for i, info := range infos {
		wg.Add(1)
		go func(id int64, info FileInfo) {
			defer wg.Done()
			s.run(id, info)
		}(ids[i], info)
	}

	go func() {
		wg.Wait()
		time.Sleep(s.hideDelay)
		s.mu.Lock()
		s.batchMessage = fmt.Sprintf("%d file(s) uploaded successfully!", len(infos))
		s.mu.Unlock()
		close(done)
	}()

	return done
}

// run advances one file's progress until it completes.
func (s *Simulator) run(id int64, info FileInfo) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		j := s.jobs[id]
		j.state = StateUploading
		j.progress += s.rng.Float64() * 30
		if j.progress < 100 {
			s.mu.Unlock()
			continue
		}

		j.progress = 100
		j.state = StateComplete
		s.files = append(s.files, model.UploadedFile{
			ID:         id,
			Name:       info.Name,
			Size:       formatSize(info.Size),
			Type:       info.Type,
			UploadedAt: s.now(),
		})
		s.mu.Unlock()
		return
	}
}

// Progress returns the rounded progress percentage and state for a file.
func (s *Simulator) Progress(id int64) (int, State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return 0, StatePending, false
	}
	return int(j.progress + 0.5), j.state, true
}

// Files returns a copy of the completed-file list in completion order.
func (s *Simulator) Files() []model.UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.UploadedFile, len(s.files))
	copy(out, s.files)
	return out
}

// Remove deletes a file from the list. Returns false if the id is unknown.
func (s *Simulator) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			delete(s.jobs, id)
			return true
		}
	}
	return false
}

// BatchMessage returns the completion message for the most recent batch.
func (s *Simulator) BatchMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batchMessage
}

// formatSize renders a byte count with base-1024 units and trailing zeros
// trimmed: "5 MB", "1.5 KB", "0 Bytes".
func formatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := fmt.Sprintf("%.2f", float64(bytes)/math.Pow(1024, float64(i)))
	v = strings.TrimRight(v, "0")
	v = strings.TrimSuffix(v, ".")
	return v + " " + units[i]
}
