// smoketest runs the numeral pipeline over a corpus of .txt files and
// reports span-invariant violations, idempotence failures, and match
// statistics. Intended for eyeballing behavior on real text before a
// release.
//
// Usage:
//
//	smoketest <directory>
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/LiKyle/ChineseNumberTool/normalize"
	"github.com/LiKyle/ChineseNumberTool/numeral"
)

const (
	chunkSize      = 1 << 20 // 1 MB per read chunk, within the package input guards
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
)

type Stats struct {
	mu             sync.Mutex
	filesScanned   int
	totalBytes     int64
	spanOK         int
	spanFail       int
	idempotentOK   int
	idempotentFail int
	matches        int
	decimalMatches int
	signedMatches  int
	unreduced      int
}

type fileState struct {
	path           string
	totalBytes     int64
	spanFailed     bool
	spanFailLogged bool
	idempotentFail bool
	idempotentLog  bool
	matches        int
	decimalMatches int
	signedMatches  int
	unreduced      int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{path: path}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			// A numeral never spans a newline, so splitting chunks at the
			// last newline keeps every match intact.
			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(string(chunk))
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(string(leftover))
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d matches, %d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond),
		state.matches, state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(text string) {
	fs.totalBytes += int64(len(text))

	matches := numeral.Extract(text)
	fs.matches += len(matches)

	// Span invariant: rebuilding the text from gaps and matches must
	// reproduce it byte for byte.
	if !fs.spanFailed {
		var sb strings.Builder
		sb.Grow(len(text))
		last := 0
		for _, m := range matches {
			sb.WriteString(text[last:m.Start])
			sb.WriteString(m.Text)
			last = m.End
		}
		sb.WriteString(text[last:])
		if sb.String() != text {
			fs.spanFailed = true
			if !fs.spanFailLogged {
				pos, got, want := firstDivergence(text, sb.String())
				fmt.Fprintf(os.Stderr, "SPAN_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
					fs.path, pos, got, want)
				fs.spanFailLogged = true
			}
		}
	}

	for _, m := range matches {
		if strings.Contains(m.Text, "點") {
			fs.decimalMatches++
		}
		if strings.HasPrefix(m.Text, "-") || strings.HasPrefix(m.Text, "負") {
			fs.signedMatches++
		}
		if _, err := numeral.Parse(m.Text); err != nil {
			// Decimal tokens fail Parse by design; anything else is
			// worth a look.
			if !strings.Contains(m.Text, "點") {
				fs.unreduced++
				fmt.Fprintf(os.Stderr, "UNREDUCED: %s: %q: %v\n", fs.path, m.Text, err)
			}
		}
	}

	// A second rewrite pass over the output must be a no-op.
	if !fs.idempotentFail {
		once := normalize.Normalize(text)
		if twice := normalize.Normalize(once); twice != once {
			fs.idempotentFail = true
			if !fs.idempotentLog {
				pos, got, want := firstDivergence(once, twice)
				fmt.Fprintf(os.Stderr, "IDEMPOTENT_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
					fs.path, pos, got, want)
				fs.idempotentLog = true
			}
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.matches += fs.matches
	stats.decimalMatches += fs.decimalMatches
	stats.signedMatches += fs.signedMatches
	stats.unreduced += fs.unreduced

	if fs.spanFailed {
		stats.spanFail++
	} else {
		stats.spanOK++
	}
	if fs.idempotentFail {
		stats.idempotentFail++
	} else {
		stats.idempotentOK++
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Span invariant OK:       %d\n", stats.spanOK)
	fmt.Printf("Span invariant FAIL:     %d\n", stats.spanFail)
	fmt.Printf("Idempotence OK:          %d\n", stats.idempotentOK)
	fmt.Printf("Idempotence FAIL:        %d\n", stats.idempotentFail)
	fmt.Println()
	fmt.Printf("Numeral matches:         %d\n", stats.matches)
	fmt.Printf("  with decimal suffix:   %d\n", stats.decimalMatches)
	fmt.Printf("  with sign marker:      %d\n", stats.signedMatches)
	fmt.Printf("  unreduced (bugs):      %d\n", stats.unreduced)
}
