package numeral

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Text  string `json:"text"`
}

const goldenPath = "../data/golden/numeral.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			gotText := Convert(tc.Value)
			if gotText != tc.Text {
				t.Errorf("Convert(%d) = %q, want %q", tc.Value, gotText, tc.Text)
			}

			gotValue, err := Parse(tc.Text)
			if err != nil {
				t.Errorf("Parse(%q) error: %v", tc.Text, err)
			} else if gotValue != tc.Value {
				t.Errorf("Parse(%q) = %d, want %d", tc.Text, gotValue, tc.Value)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	values := []struct {
		name  string
		value int64
	}{
		{"zero", 0},
		{"seven", 7},
		{"ten", 10},
		{"eighteen", 18},
		{"forty-two", 42},
		{"hundred five", 105},
		{"thousand fifty-two", 1052},
		{"three thousand", 3257},
		{"ten thousand", 10000},
		{"hundred thousand fifty", 100050},
		{"fifty-one million", 51000000},
		{"hundred million plus", 100050000},
		{"big units with tail", 570000070},
		{"negative eighteen", -18},
		{"negative hundred million", -100050000},
	}

	cases := make([]goldenCase, len(values))
	for i, v := range values {
		cases[i] = goldenCase{Name: v.name, Value: v.value, Text: Convert(v.value)}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(goldenPath, data, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("wrote %d golden cases to %s", len(cases), goldenPath)
}
