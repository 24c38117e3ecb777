//go:build ignore

// e2e_pipeline exercises the numeral, translit, and normalize packages in
// a single run and writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/LiKyle/ChineseNumberTool/normalize"
	"github.com/LiKyle/ChineseNumberTool/numeral"
	"github.com/LiKyle/ChineseNumberTool/translit"
)

// ---------- constants ----------

const (
	logPath       = "data/e2e_pipeline.log"
	moduleCount   = 3
	suiteCount    = 4
	maxDetailLen  = 200
	concWorkers   = 8
	concIter      = 100
	separator     = "=========================================================="
	truncMaxRunes = 80
)

// ---------- test corpus ----------

const textProfile = `序號十八號，身高一百零五點七二公分，重量三千兩百五十七點三九公斤，身價五千一百萬。`

const textSigned = `去年利潤負三點五個百分點，身價-一億零五萬元。`

const textPlain = `這段話完全沒有口語數字，只有 Arabic digits 105.72 和英文。`

const textDigits = `電話尾號九五二七，編號零零七。`

const textMixedUnits = `五億七千萬零七十加一千零五十二等於多少。`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// ---------- test suites ----------

func testNumeral() []testResult {
	const mod = "numeral"
	var results []testResult

	results = append(results, safeRun(mod, "extract_profile", func() testResult {
		start := time.Now()
		got := numeral.Find(textProfile)
		want := []string{"十八", "一百零五點七二", "三千兩百五十七點三九", "五千一百萬"}
		if len(got) != len(want) {
			return fail(mod, "extract_profile", fmt.Sprintf("got %v, want %v", got, want), start)
		}
		for i := range want {
			if got[i] != want[i] {
				return fail(mod, "extract_profile", fmt.Sprintf("match %d: got %q, want %q", i, got[i], want[i]), start)
			}
		}
		return pass(mod, "extract_profile", start)
	}))

	results = append(results, safeRun(mod, "parse_signed", func() testResult {
		start := time.Now()
		n, err := numeral.Parse("-一億零五萬")
		if err != nil || n != -100050000 {
			return fail(mod, "parse_signed", fmt.Sprintf("got %d, %v", n, err), start)
		}
		return pass(mod, "parse_signed", start)
	}))

	results = append(results, safeRun(mod, "parse_rejects_label", func() testResult {
		start := time.Now()
		_, err := numeral.Parse("體重一百零五")
		if !errors.Is(err, numeral.ErrNoMatch) {
			return fail(mod, "parse_rejects_label", fmt.Sprintf("error = %v, want ErrNoMatch", err), start)
		}
		return pass(mod, "parse_rejects_label", start)
	}))

	results = append(results, safeRun(mod, "convert_roundtrip", func() testResult {
		start := time.Now()
		for _, n := range []int64{0, 10, 18, 105, 1052, 51000000, 100050000, 570000070, -18} {
			text := numeral.Convert(n)
			got, err := numeral.Parse(text)
			if err != nil || got != n {
				return fail(mod, "convert_roundtrip",
					fmt.Sprintf("Parse(Convert(%d)) = %d, %v (text %q)", n, got, err, text), start)
			}
		}
		return pass(mod, "convert_roundtrip", start)
	}))

	return results
}

func testTranslit() []testResult {
	const mod = "translit"
	var results []testResult

	results = append(results, safeRun(mod, "to_arabic_basic", func() testResult {
		start := time.Now()
		got := translit.ToArabic(textDigits)
		want := "電話尾號9527，編號007。"
		if got != want {
			return fail(mod, "to_arabic_basic", fmt.Sprintf("got %q, want %q", got, want), start)
		}
		return pass(mod, "to_arabic_basic", start)
	}))

	results = append(results, safeRun(mod, "roundtrip_digits", func() testResult {
		start := time.Now()
		const digits = "9527"
		if got := translit.ToArabic(translit.ToChinese(digits)); got != digits {
			return fail(mod, "roundtrip_digits", fmt.Sprintf("got %q", got), start)
		}
		return pass(mod, "roundtrip_digits", start)
	}))

	return results
}

func testNormalize() []testResult {
	const mod = "normalize"
	var results []testResult

	results = append(results, safeRun(mod, "profile", func() testResult {
		start := time.Now()
		got := normalize.Normalize(textProfile)
		want := "序號18號，身高105.72公分，重量3257.39公斤，身價51000000。"
		if got != want {
			return fail(mod, "profile", fmt.Sprintf("got %q, want %q", got, want), start)
		}
		return pass(mod, "profile", start)
	}))

	results = append(results, safeRun(mod, "signed", func() testResult {
		start := time.Now()
		got := normalize.Normalize(textSigned)
		want := "去年利潤-3.5個百分點，身價-100050000元。"
		if got != want {
			return fail(mod, "signed", fmt.Sprintf("got %q, want %q", got, want), start)
		}
		return pass(mod, "signed", start)
	}))

	results = append(results, safeRun(mod, "plain_untouched", func() testResult {
		start := time.Now()
		if got := normalize.Normalize(textPlain); got != textPlain {
			return fail(mod, "plain_untouched", fmt.Sprintf("got %q", got), start)
		}
		return pass(mod, "plain_untouched", start)
	}))

	results = append(results, safeRun(mod, "idempotent", func() testResult {
		start := time.Now()
		for _, s := range []string{textProfile, textSigned, textPlain, textMixedUnits} {
			once := normalize.Normalize(s)
			if twice := normalize.Normalize(once); twice != once {
				return fail(mod, "idempotent", fmt.Sprintf("on %q: %q != %q",
					truncate(s, truncMaxRunes), truncate(twice, truncMaxRunes), truncate(once, truncMaxRunes)), start)
			}
		}
		return pass(mod, "idempotent", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "hammer_all_packages", func() testResult {
		start := time.Now()

		var wg sync.WaitGroup
		panics := make(chan any, concWorkers)

		for range concWorkers {
			wg.Go(func() {
				defer func() {
					if p := recover(); p != nil {
						panics <- p
					}
				}()
				for range concIter {
					numeral.Extract(textProfile)
					numeral.Parse("五億七千萬零七十")
					numeral.Convert(570000070)
					translit.ToArabic(textDigits)
					normalize.Normalize(textSigned)
				}
			})
		}

		wg.Wait()
		close(panics)
		if p, ok := <-panics; ok {
			return fail(mod, "hammer_all_packages", fmt.Sprintf("PANIC: %v", p), start)
		}
		return pass(mod, "hammer_all_packages", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testNumeral,
		testTranslit,
		testNormalize,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  ChineseNumberTool E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
