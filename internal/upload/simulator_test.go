package upload

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	rng := rand.New(rand.NewPCG(1, 2))
	now := func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return NewSimulator(rng, now, time.Millisecond, 0)
}

func TestUploadCompletesBatch(t *testing.T) {
	s := newTestSimulator()

	done := s.Upload([]FileInfo{
		{Name: "comments.pdf", Size: 2 << 20, Type: "application/pdf"},
		{Name: "survey.csv", Size: 1536, Type: "text/csv"},
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not complete")
	}

	files := s.Files()
	require.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "comments.pdf")
	assert.Contains(t, names, "survey.csv")
	assert.NotEqual(t, files[0].ID, files[1].ID, "ids must be distinct within a batch")

	for _, f := range files {
		assert.NotEmpty(t, f.Size, "size must be humanized")
		assert.False(t, f.UploadedAt.IsZero())

		progress, state, ok := s.Progress(f.ID)
		require.True(t, ok)
		assert.Equal(t, 100, progress, "progress clamps at 100")
		assert.Equal(t, StateComplete, state)
	}

	assert.Equal(t, "2 file(s) uploaded successfully!", s.BatchMessage())
}

func TestUploadFormatsSizes(t *testing.T) {
	s := newTestSimulator()
	<-s.Upload([]FileInfo{{Name: "big.bin", Size: 5 << 20, Type: "application/octet-stream"}})

	files := s.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "5 MB", files[0].Size)
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1234, "1.21 KB"},
		{5 << 20, "5 MB"},
		{3 << 30, "3 GB"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatSize(c.bytes), "bytes=%d", c.bytes)
	}
}

func TestConcurrentBatchesStayIndependent(t *testing.T) {
	s := newTestSimulator()

	first := s.Upload([]FileInfo{{Name: "a.txt", Size: 10, Type: "text/plain"}})
	second := s.Upload([]FileInfo{{Name: "b.txt", Size: 20, Type: "text/plain"}})

	<-first
	<-second

	files := s.Files()
	require.Len(t, files, 2)
	assert.NotEqual(t, files[0].Name, files[1].Name)
}

func TestRemoveFile(t *testing.T) {
	s := newTestSimulator()
	<-s.Upload([]FileInfo{{Name: "doc.txt", Size: 100, Type: "text/plain"}})

	files := s.Files()
	require.Len(t, files, 1)

	assert.True(t, s.Remove(files[0].ID))
	assert.Empty(t, s.Files())

	// Removing an unknown id is a no-op.
	assert.False(t, s.Remove(999))
}

func TestEmptyBatchCompletesImmediately(t *testing.T) {
	s := newTestSimulator()

	select {
	case <-s.Upload(nil):
	case <-time.After(time.Second):
		t.Fatal("empty batch should complete immediately")
	}
	assert.Empty(t, s.Files())
}
