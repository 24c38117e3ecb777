// Tests for digit-by-digit transliteration in both directions.
package translit

import (
	"fmt"
	"sync"
	"testing"
)

func TestToArabic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain digits", "九五二七", "9527"},
		{"mixed text", "你好九五二七", "你好9527"},
		{"zero run", "零零七", "007"},
		{"sign marker", "負三", "-3"},
		{"financial variants", "玖伍貳柒", "9527"},
		{"liang untouched", "我們兩個", "我們兩個"},
		{"magnitude words untouched", "一百零五", "1百05"},
		{"already arabic", "9527", "9527"},
		{"no convertible characters", "hello world", "hello world"},
		{"cjk punctuation untouched", "三，五。", "3，5。"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToArabic(tt.input)
			if got != tt.want {
				t.Errorf("ToArabic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToChinese(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain digits", "9527", "九五二七"},
		{"mixed text", "序號18號", "序號一八號"},
		{"sign", "-3", "負三"},
		{"decimal point untouched", "3.14", "三.一四"},
		{"no convertible characters", "hello", "hello"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToChinese(tt.input)
			if got != tt.want {
				t.Errorf("ToChinese(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestIdempotence verifies that a second pass over converted output is a
// no-op in both directions.
func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{"你好九五二七", "負三", "9527", "hello", ""}
	for _, in := range inputs {
		once := ToArabic(in)
		if twice := ToArabic(once); twice != once {
			t.Errorf("ToArabic not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}

// TestRoundTrip verifies ToArabic(ToChinese(s)) == s for digit strings.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"0", "9527", "-42", "007"}
	for _, in := range inputs {
		if got := ToArabic(ToChinese(in)); got != in {
			t.Errorf("ToArabic(ToChinese(%q)) = %q", in, got)
		}
	}
}

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

			ToArabic("你好九五二七")
			ToChinese("9527")
		})
	}

	wg.Wait()
}

func ExampleToArabic() {
	fmt.Println(ToArabic("你好九五二七"))
	// Output: 你好9527
}

func BenchmarkToArabic(b *testing.B) {
	for b.Loop() {
		ToArabic("你好九五二七，負三點一四")
	}
}
