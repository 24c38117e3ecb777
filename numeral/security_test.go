package numeral

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for range goroutines {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Extract("序號十八號，身高一百零五點七二公分")
			Find("身價五千一百萬")
			Parse("一億零五萬")
			Parse("-十八")
			Reduce("五億七千萬零七十", false)
			Convert(570000070)
			Convert(-18)
		})
	}

	wg.Wait()
}

// TestReduceOutOfRange verifies that unbounded bodies fail cleanly
// instead of overflowing int64.
func TestReduceOutOfRange(t *testing.T) {
	t.Parallel()

	// Each 九千億 contributes 9×10^11; well past 10^18 in aggregate.
	body := strings.Repeat("九千億", 1_200_000)

	got, err := Reduce(body, false)
	if err == nil {
		t.Fatalf("Reduce(huge body) = %d, nil; want ErrNotReducible", got)
	}
	if !errors.Is(err, ErrNotReducible) {
		t.Errorf("Reduce(huge body) error = %v, want ErrNotReducible", err)
	}
}

// TestExtractOversized verifies the input size guard.
func TestExtractOversized(t *testing.T) {
	t.Parallel()

	s := strings.Repeat("十八", maxInputBytes/6+1)
	if got := Extract(s); got != nil {
		t.Errorf("Extract(oversized) returned %d matches, want nil", len(got))
	}
}

// TestParseMalformed verifies Parse handles malformed input gracefully.
func TestParseMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		"-",
		"負",
		"負負十八",
		"--十八",
		"點",
		"點五",
		strings.Repeat("九", 10000),
	}

	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", input, r)
				}
			}()
			_, _ = Parse(input)
		})
	}
}
