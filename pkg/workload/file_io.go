package workload

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fluxorio/flowbench/pkg/metrics"
)

// FileIO runs Files concurrent tasks; each creates a uniquely named file
// under a per-run temp dir, writes Lines lines, reads the file back, counts
// its lines and deletes it. A task counts as completed only when it read at
// least one line back. I/O errors are absorbed per task.
type FileIO struct {
	Files int
	Lines int

	// Dir is the parent for the per-run temp dir. Empty means the OS
	// default temp location.
	Dir string
}

// NewFileIO sizes the workload at 20 files per scale unit, 1000 lines each.
func NewFileIO(scale int, dir string) *FileIO {
	return &FileIO{
		Files: 20 * scale,
		Lines: 1000,
		Dir:   dir,
	}
}

func (w *FileIO) Name() string { return "file-io" }

func (w *FileIO) Run() (Result, error) {
	start := time.Now()

	tempDir, err := os.MkdirTemp(w.Dir, "flowbench-fileio-")
	if err != nil {
		return Result{}, fmt.Errorf("file-io: create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	counter := &metrics.CompletionCounter{}
	var wg sync.WaitGroup

	for i := 0; i < w.Files; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			// uuid in the name keeps paths collision-free across tasks
			name := filepath.Join(tempDir, fmt.Sprintf("task_%d_%s.dat", id, uuid.NewString()))
			if w.roundTrip(name, id) > 0 {
				counter.Inc()
			}
		}(i)
	}
	wg.Wait()

	return Result{
		Elapsed:   time.Since(start),
		Completed: counter.Value(),
	}, nil
}

// roundTrip writes the task's lines, reads them back and removes the file.
// Returns the number of lines read, zero on any error.
func (w *FileIO) roundTrip(name string, id int) int {
	f, err := os.Create(name)
	if err != nil {
		return 0
	}
	defer os.Remove(name)

	buf := bufio.NewWriter(f)
	for j := 0; j < w.Lines; j++ {
		fmt.Fprintf(buf, "data_%d_%d\n", id, j)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return 0
	}
	if err := f.Close(); err != nil {
		return 0
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return 0
	}

	lines := 0
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	return lines
}
