// Package conversion is the application layer over pkg/wareki. The HTTP API,
// the Discord bot and the CLI all convert through a Service so that input
// normalization, logging and metrics are applied the same way everywhere.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/osse101/WarekiBot_Go/internal/logger"
	"github.com/osse101/WarekiBot_Go/internal/metrics"
	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

// ErrBatchTooLarge is returned when a batch exceeds Options.MaxBatchSize.
var ErrBatchTooLarge = errors.New("batch too large")

// ErrEmptyBatch is returned for a batch with no codes.
var ErrEmptyBatch = errors.New("batch is empty")

// Result is the outcome of converting one code. Exactly one of
// GregorianYear and Error is meaningful, selected by OK.
type Result struct {
	Code          string           `json:"code"`
	OK            bool             `json:"ok"`
	Era           string           `json:"era,omitempty"`
	EraYear       int              `json:"era_year,omitempty"`
	GregorianYear int              `json:"gregorian_year,omitempty"`
	ErrorKind     wareki.ErrorKind `json:"error_kind,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// EraCode is the outcome of a Gregorian-to-era lookup.
type EraCode struct {
	Year    int    `json:"year"`
	Code    string `json:"code"`
	Era     string `json:"era"`
	EraYear int    `json:"era_year"`
}

// Options configures a Service.
type Options struct {
	// MaxBatchSize caps ConvertBatch; 0 means unlimited.
	MaxBatchSize int
}

// Service converts era codes.
type Service interface {
	// Convert converts one code, running wareki.Normalize first when
	// lenient is set. A rejected code is reported through a *wareki.Error;
	// the returned Result is filled in either way.
	Convert(ctx context.Context, code string, lenient bool) (Result, error)
	// ConvertBatch converts codes in order. Per-code failures are carried in
	// the results; the error is only set for batch-level problems or
	// context cancellation.
	ConvertBatch(ctx context.Context, codes []string, lenient bool) ([]Result, error)
	// ToEraCode renders a Gregorian year as an era code.
	ToEraCode(ctx context.Context, year int, style wareki.PrefixStyle) (EraCode, error)
	// Eras lists the supported eras, oldest first.
	Eras(ctx context.Context) []wareki.Era
}

type service struct {
	opts Options
}

// NewService creates a conversion service.
func NewService(opts Options) Service {
	return &service{opts: opts}
}

func (s *service) Convert(ctx context.Context, code string, lenient bool) (Result, error) {
	input := code
	if lenient {
		input = wareki.Normalize(code)
	}

	d, err := wareki.Parse(input)
	if err != nil {
		kind := wareki.KindOf(err)
		logger.FromContext(ctx).Debug("Era code rejected", "code", code, "kind", kind)
		metrics.RecordConversion(eraOf(input), string(kind))
		return Result{Code: code, ErrorKind: kind, Error: err.Error()}, err
	}

	metrics.RecordConversion(d.Era.Name, metrics.OutcomeSuccess)
	return Result{
		Code:          code,
		OK:            true,
		Era:           d.Era.Name,
		EraYear:       d.Year,
		GregorianYear: d.GregorianYear(),
	}, nil
}

func (s *service) ConvertBatch(ctx context.Context, codes []string, lenient bool) ([]Result, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.opts.MaxBatchSize > 0 && len(codes) > s.opts.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d codes, limit %d", ErrBatchTooLarge, len(codes), s.opts.MaxBatchSize)
	}

	metrics.BatchSize.Observe(float64(len(codes)))

	results := make([]Result, 0, len(codes))
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch conversion interrupted after %d codes: %w", len(results), err)
		}
		// Per-code errors are already in the Result.
		res, _ := s.Convert(ctx, code, lenient)
		results = append(results, res)
	}
	return results, nil
}

func (s *service) ToEraCode(ctx context.Context, year int, style wareki.PrefixStyle) (EraCode, error) {
	d, err := wareki.FromGregorianYear(year)
	if err != nil {
		logger.FromContext(ctx).Debug("Year has no era code", "year", year)
		metrics.RecordReverseLookup(string(wareki.KindOf(err)))
		return EraCode{}, err
	}

	metrics.RecordReverseLookup(metrics.OutcomeSuccess)
	return EraCode{
		Year:    year,
		Code:    d.Code(style),
		Era:     d.Era.Name,
		EraYear: d.Year,
	}, nil
}

func (s *service) Eras(_ context.Context) []wareki.Era {
	return wareki.Eras()
}

// eraOf names the era for metrics when the prefix resolves even though the
// code as a whole was rejected.
func eraOf(code string) string {
	r, _ := utf8.DecodeRuneInString(code)
	if era, ok := wareki.LookupEra(r); ok {
		return era.Name
	}
	return metrics.EraUnknown
}
