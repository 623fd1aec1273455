package normalizer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"phonenorm/internal/logger"
	"phonenorm/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(Options{})
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(Options{})

	tests := []struct {
		name  string
		rec   models.RawRecord
		want  string
		valid bool
	}{
		{"formatted", models.RawRecord{Name: "Alice", RawNumber: "(212) 555-0147"}, "(212) 555-0147", true},
		{"vanity", models.RawRecord{Name: "Flo", RawNumber: "1-800-FLOWERS"}, "(800) 356-9377", true},
		{"too short keeps raw text", models.RawRecord{Name: "Bob", RawNumber: "555-0100"}, "[Invalid: 555-0100]", false},
		{"rule violation marked invalid", models.RawRecord{Name: "Zed", RawNumber: "012-345-6789"}, "[Invalid: 012-345-6789]", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Process(tt.rec)
			if err != nil {
				t.Fatalf("Process returned unexpected error: %v", err)
			}

			if result.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v", result.Valid(), tt.valid)
			}

			if got := result.Render(); got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}

			if result.Name != tt.rec.Name {
				t.Errorf("Name = %s, want %s", result.Name, tt.rec.Name)
			}
		})
	}
}

func TestProcessor_Process_DistinguishesFailurePaths(t *testing.T) {
	p := NewProcessor(Options{})

	short, _ := p.Process(models.RawRecord{Name: "Bob", RawNumber: "555-01"})
	if !errors.Is(short.Err, ErrTooShort) || errors.Is(short.Err, models.ErrBusinessRule) {
		t.Errorf("short number reason = %v, want ErrTooShort only", short.Err)
	}

	rule, _ := p.Process(models.RawRecord{Name: "Zed", RawNumber: "012-345-6789"})
	if !errors.Is(rule.Err, models.ErrInvalidAreaCode) {
		t.Errorf("rule violation reason = %v, want ErrInvalidAreaCode", rule.Err)
	}
}

func TestProcessor_Process_FailFast(t *testing.T) {
	p := NewProcessor(Options{FailFast: true})

	_, err := p.Process(models.RawRecord{Name: "Zed", RawNumber: "012-345-6789"})
	if !errors.Is(err, models.ErrBusinessRule) {
		t.Fatalf("Process error = %v, want ErrBusinessRule", err)
	}

	// Too-short numbers stay soft even in fail-fast mode.
	result, err := p.Process(models.RawRecord{Name: "Bob", RawNumber: "555-01"})
	if err != nil {
		t.Fatalf("Process returned unexpected error for short number: %v", err)
	}

	if result.Valid() {
		t.Error("expected invalid result for short number")
	}
}

func TestProcessor_ProcessAll(t *testing.T) {
	records := []models.RawRecord{
		{Name: "Alice", RawNumber: "(212) 555-0147"},
		{Name: "Zed", RawNumber: "012-345-6789"},
		{Name: "Bob", RawNumber: "555-01"},
	}

	results, err := NewProcessor(Options{}).ProcessAll(records)
	if err != nil {
		t.Fatalf("ProcessAll returned unexpected error: %v", err)
	}

	want := []string{"(212) 555-0147", "[Invalid: 012-345-6789]", "[Invalid: 555-01]"}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}

	for i, r := range results {
		if r.Render() != want[i] {
			t.Errorf("results[%d] = %s, want %s", i, r.Render(), want[i])
		}
	}

	failFast, err := NewProcessor(Options{FailFast: true}).ProcessAll(records)
	if err == nil {
		t.Fatal("ProcessAll expected error in fail-fast mode")
	}

	if failFast != nil {
		t.Error("ProcessAll expected nil results in fail-fast mode")
	}

	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("error %q does not name the failing record", err)
	}
}

func TestProcessor_LogsInvalidRecords(t *testing.T) {
	var buf bytes.Buffer

	p := NewProcessor(Options{Logger: logger.New(&buf, "debug")})

	if _, err := p.Process(models.RawRecord{Name: "Bob", RawNumber: "555-01"}); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Process(models.RawRecord{Name: "Alice", RawNumber: "2125550147"}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "invalid phone number") || !strings.Contains(out, "name=Bob") {
		t.Errorf("missing warn line for invalid record: %s", out)
	}

	if !strings.Contains(out, "PhoneNumber('2125550147')") {
		t.Errorf("missing debug line for valid record: %s", out)
	}
}
