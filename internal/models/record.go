// Package models defines the data types shared by the reader, normalizer and formatter.
package models

import "fmt"

// Render styles for valid numbers.
const (
	StyleDisplay = "display"
	StyleE164    = "e164"
)

// RawRecord is one well-formed input line.
type RawRecord struct {
	Name      string `json:"name"`
	RawNumber string `json:"rawNumber"`
}

// Result is the outcome of processing one record. Exactly one of Number and
// Err is set.
type Result struct {
	Number    *PhoneNumber `json:"number,omitempty"`
	Err       error        `json:"-"`
	Name      string       `json:"name"`
	RawNumber string       `json:"rawNumber"`
}

// ValidResult wraps a successfully built number.
func ValidResult(rec RawRecord, number PhoneNumber) Result {
	return Result{
		Name:      rec.Name,
		RawNumber: rec.RawNumber,
		Number:    &number,
	}
}

// InvalidResult marks a record as invalid, keeping the original raw text.
func InvalidResult(rec RawRecord, reason error) Result {
	return Result{
		Name:      rec.Name,
		RawNumber: rec.RawNumber,
		Err:       reason,
	}
}

// Valid reports whether the record produced a phone number.
func (r Result) Valid() bool {
	return r.Number != nil
}

// Render returns the display form or the invalid marker.
func (r Result) Render() string {
	return r.RenderAs(StyleDisplay)
}

// RenderAs renders a valid number in the given style. Invalid records always
// render as "[Invalid: <raw>]".
func (r Result) RenderAs(style string) string {
	if !r.Valid() {
		return fmt.Sprintf("[Invalid: %s]", r.RawNumber)
	}

	if style == StyleE164 {
		return r.Number.E164()
	}

	return r.Number.Display()
}

// Summary counts processed records.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Summarize counts valid and invalid results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		if r.Valid() {
			s.Valid++
		} else {
			s.Invalid++
		}
	}

	return s
}
