package normalizer

import (
	"errors"
	"fmt"

	"phonenorm/internal/logger"
	"phonenorm/internal/models"
)

// Options controls how records are validated. FailFast aborts processing on
// the first numbering plan violation instead of marking the record invalid.
// StrictNANP additionally checks numbers against libphonenumber's US metadata.
type Options struct {
	Logger     *logger.Logger
	FailFast   bool
	StrictNANP bool
}

// Processor runs records through Normalize and the Validator.
type Processor struct {
	validator *Validator
	log       *logger.Logger
	failFast  bool
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts Options) *Processor {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Processor{
		validator: NewValidator(opts.StrictNANP),
		log:       log,
		failFast:  opts.FailFast,
	}
}

// Process normalizes and validates one record. The returned error is non-nil
// only in fail-fast mode, when a numbering plan rule is violated.
func (p *Processor) Process(rec models.RawRecord) (models.Result, error) {
	// 1. Normalize the raw text
	digits := Normalize(rec.RawNumber)

	// 2. Validate length and numbering plan rules
	number, err := p.validator.Validate(digits)
	if err != nil {
		if p.failFast && errors.Is(err, models.ErrBusinessRule) {
			return models.Result{}, fmt.Errorf("record %q (%s): %w", rec.Name, rec.RawNumber, err)
		}

		p.log.Warn("invalid phone number", "name", rec.Name, "raw", rec.RawNumber, "digits", digits, "reason", err)

		return models.InvalidResult(rec, err), nil
	}

	p.log.Debug("normalized phone number", "name", rec.Name, "number", number.Debug())

	return models.ValidResult(rec, number), nil
}

// ProcessAll processes records in input order. In fail-fast mode the first
// rule violation discards every result.
func (p *Processor) ProcessAll(records []models.RawRecord) ([]models.Result, error) {
	results := make([]models.Result, 0, len(records))

	for i, rec := range records {
		result, err := p.Process(rec)
		if err != nil {
			return nil, fmt.Errorf("processing failed at record %d: %w", i+1, err)
		}

		results = append(results, result)
	}

	return results, nil
}
