// Tests for in-text numeral rewriting.
package normalize

import (
	"fmt"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"full profile",
			"序號十八號，身高一百零五點七二公分，重量三千兩百五十七點三九公斤，身價五千一百萬",
			"序號18號，身高105.72公分，重量3257.39公斤，身價51000000",
		},
		{"ascii sign", "身價-一億零五萬", "身價-100050000"},
		{"chinese sign", "身價負一億零五萬", "身價-100050000"},
		{"negative decimal", "利潤-三點五", "利潤-3.5"},
		{"negative decimal spelled sign", "利潤負三點五", "利潤-3.5"},
		{"negative zero decimal keeps sign", "誤差負零點五", "誤差-0.5"},
		{"standalone numeral", "十八", "18"},
		{"trailing decimal mark dropped", "三點", "3"},
		{"decimal mark mid-sentence", "三點整來", "3整來"},
		{"big units with tail", "五億七千萬零七十", "570000070"},
		{"zero fill", "一千零五十二", "1052"},
		{"lone ten untouched", "十個人", "十個人"},
		{"surrounding text preserved", "第一名：第二名。", "第1名：第2名。"},
		{"empty", "", ""},
		{"no numerals", "hello world", "hello world"},
		{"arabic only unchanged", "序號18號，身高105.72公分", "序號18號，身高105.72公分"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent verifies that a second pass over the output is
// a no-op: replacements never produce text that matches again.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"序號十八號，身高一百零五點七二公分，重量三千兩百五十七點三九公斤，身價五千一百萬",
		"身價-一億零五萬",
		"利潤負三點五",
		"十個人",
		"序號18號",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent on %q: %q != %q", in, twice, once)
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

			Normalize("序號十八號，身高一百零五點七二公分")
			Normalize("身價-一億零五萬")
		})
	}

	wg.Wait()
}

func ExampleNormalize() {
	fmt.Println(Normalize("序號十八號，身價五千一百萬。"))
	// Output: 序號18號，身價51000000。
}

func BenchmarkNormalize(b *testing.B) {
	const s = "序號十八號，身高一百零五點七二公分，重量三千兩百五十七點三九公斤，身價五千一百萬。"
	for b.Loop() {
		Normalize(s)
	}
}
