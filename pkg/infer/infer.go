/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Main entry point for consensus-based date format inference. Filters
sentinels, samples large inputs with disambiguating pre-scan injection, buckets
examples by token structure, resolves roles by consensus voting, and assembles the
final strptime format string with a confidence score.
*/

package infer

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-dateinfer/pkg/consensus"
	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/format"
	"github.com/kleascm/akaylee-dateinfer/pkg/prescan"
	"github.com/kleascm/akaylee-dateinfer/pkg/rules"
	"github.com/kleascm/akaylee-dateinfer/pkg/tokenizer"
)

// MaxSample bounds how many examples the consensus pass analyzes.
// Consensus converges long before this; the pre-scan guards the rest.
const MaxSample = 1000

// Options configures an inference run
type Options struct {
	PreferDayfirst bool    `json:"prefer_dayfirst"` // Prefer day-first for ambiguous dates (default: true)
	MinConfidence  float64 `json:"min_confidence"`  // Minimum confidence threshold (default: 0.0)
	Strict         bool    `json:"strict"`          // Fail if any input disagrees with the inferred format
}

// DefaultOptions returns the default inference configuration
func DefaultOptions() Options {
	return Options{PreferDayfirst: true}
}

// Result is the outcome of a successful inference
type Result struct {
	Format     string                  `json:"format"`     // The inferred strptime format string
	Confidence float64                 `json:"confidence"` // Confidence score (0.0 - 1.0)
	TokenTypes []constraints.TokenType `json:"-"`          // Resolved role for each position
}

// TokenTypeNames returns the resolved roles as display strings, one per
// position: "Year4", "Day", "Literal('/')", ...
func (r *Result) TokenTypeNames() []string {
	names := make([]string, len(r.TokenTypes))
	for i, t := range r.TokenTypes {
		names[i] = t.String()
	}
	return names
}

// Engine performs date format inference. All state is per-invocation; an
// Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	opts   Options
	logger logrus.FieldLogger
}

// NewEngine creates an inference engine with the given options
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// SetLogger attaches a structured logger for debug traces of bucket and
// sampling decisions. A nil logger disables tracing.
func (e *Engine) SetLogger(logger logrus.FieldLogger) {
	e.logger = logger
}

// sentinel values commonly found in exported tabular data
var sentinels = map[string]struct{}{
	"n/a": {}, "na": {}, "null": {}, "-": {},
}

// isSentinel reports whether a trimmed input is a null-like placeholder
// rather than a date
func isSentinel(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	_, ok := sentinels[strings.ToLower(trimmed)]
	return ok
}

// Infer infers the date format shared by a list of example strings.
//
// Unlike per-element parsers, the whole list is analyzed together: a single
// unambiguous example (a 15 that cannot be a month) settles the role of
// every ambiguous sibling in the same positional slot.
func (e *Engine) Infer(dates []string) (*Result, error) {
	if len(dates) == 0 {
		return nil, ErrEmptyInput
	}

	sample := e.sample(dates)

	// Tokenize the sample. Inputs are trimmed first so trailing whitespace
	// from sloppy exports does not split otherwise identical structures.
	type row struct {
		tokens []tokenizer.Token
		sig    string
	}
	rows := make([]*row, len(sample))
	nonSentinel := 0
	for i, date := range sample {
		trimmed := strings.TrimSpace(date)
		if isSentinel(trimmed) {
			continue
		}
		nonSentinel++
		tokens, err := tokenizer.Tokenize(trimmed)
		if err != nil {
			continue
		}
		rows[i] = &row{tokens: tokens, sig: tokenizer.Signature(tokens)}
	}

	if nonSentinel == 0 {
		return nil, ErrEmptyInput
	}

	// Bucket by structure signature; the winner needs a strict majority of
	// the non-sentinel inputs. Ties break by first occurrence.
	counts := make(map[string]int)
	for _, r := range rows {
		if r != nil {
			counts[r.sig]++
		}
	}
	majoritySig := ""
	majorityCount := 0
	for _, r := range rows {
		if r != nil && counts[r.sig] > majorityCount {
			majoritySig = r.sig
			majorityCount = counts[r.sig]
		}
	}

	if majorityCount*2 <= nonSentinel {
		return nil, &InconsistentFormatsError{MajoritySize: majorityCount, Total: nonSentinel}
	}

	bucket := make([][]tokenizer.Token, 0, majorityCount)
	for _, r := range rows {
		if r != nil && r.sig == majoritySig {
			bucket = append(bucket, r.tokens)
		}
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"sample_size": len(sample),
			"bucket_size": len(bucket),
			"signature":   majoritySig,
		}).Debug("Selected majority structure bucket")
	}

	// Resolve roles by consensus, then apply the rewrite rules for whatever
	// voting left ambiguous
	resolved, rawConfidence, err := consensus.Resolve(bucket, e.opts.PreferDayfirst)
	if err != nil {
		return nil, err
	}
	rules.Apply(resolved)

	if err := checkResolution(bucket, resolved); err != nil {
		return nil, err
	}

	confidence := rawConfidence * float64(len(bucket)) / float64(len(sample))
	if confidence < e.opts.MinConfidence {
		return nil, &LowConfidenceError{Got: confidence, Required: e.opts.MinConfidence}
	}

	result := &Result{
		Format:     format.ToStrptime(bucket[0], resolved),
		Confidence: confidence,
		TokenTypes: resolved,
	}

	if e.opts.Strict {
		if err := e.validateStrict(dates, resolved); err != nil {
			return nil, err
		}
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"format":     result.Format,
			"confidence": result.Confidence,
		}).Debug("Inference complete")
	}

	return result, nil
}

// sample bounds the analyzed inputs to MaxSample. Large inputs are picked by
// stride, then up to two stride picks are replaced by pre-scan selections so
// the disambiguating evidence is guaranteed present.
func (e *Engine) sample(dates []string) []string {
	if len(dates) <= MaxSample {
		return dates
	}

	step := len(dates) / MaxSample
	sample := make([]string, 0, MaxSample)
	for i := 0; i < len(dates) && len(sample) < MaxSample; i += step {
		sample = append(sample, dates[i])
	}

	disambig := prescan.FindDisambiguatingIndices(dates)
	injected := 0
	for pos, idx := range disambig {
		if idx < 0 {
			continue
		}
		alreadySampled := idx%step == 0 && idx/step < len(sample)
		if !alreadySampled && len(sample) > pos {
			sample[len(sample)-1-pos] = dates[idx]
			injected++
		}
	}

	if e.logger != nil && injected > 0 {
		e.logger.WithFields(logrus.Fields{
			"total":    len(dates),
			"stride":   step,
			"injected": injected,
		}).Debug("Pre-scan injected disambiguating examples into sample")
	}

	return sample
}

// checkResolution rejects resolutions with no date component at all, and
// surfaces unanimous out-of-dictionary text tokens as their own error.
func checkResolution(bucket [][]tokenizer.Token, resolved []constraints.TokenType) error {
	anyComponent := false
	for _, tt := range resolved {
		if tt.IsDateComponent() {
			anyComponent = true
			break
		}
	}

	for pos, tt := range resolved {
		if tt != constraints.Unknown {
			continue
		}
		unknownAlpha := true
		for _, tokens := range bucket {
			t := &tokens[pos]
			if t.NumericValue != nil || len(t.Value) == 0 || !isLetter(t.Value[0]) ||
				len(t.PossibleTypes) != 1 || t.PossibleTypes[0] != constraints.Unknown {
				unknownAlpha = false
				break
			}
		}
		if unknownAlpha {
			return &UnknownAlphaTokenError{Token: bucket[0][pos].Value}
		}
	}

	if !anyComponent {
		return ErrUnresolvableFormat
	}
	return nil
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// validateStrict re-tokenizes every original input (not just the sample) and
// checks compatibility with the resolved roles. Sentinels are skipped; they
// are placeholders, not disagreement.
func (e *Engine) validateStrict(dates []string, resolved []constraints.TokenType) error {
	bad := 0
	for _, date := range dates {
		trimmed := strings.TrimSpace(date)
		if isSentinel(trimmed) {
			continue
		}
		tokens, err := tokenizer.Tokenize(trimmed)
		if err != nil || !isCompatible(tokens, resolved) {
			bad++
		}
	}
	if bad > 0 {
		return &StrictValidationError{Bad: bad, Total: len(dates)}
	}
	return nil
}

// isCompatible checks one tokenized input against the resolved roles
func isCompatible(tokens []tokenizer.Token, resolved []constraints.TokenType) bool {
	if len(tokens) != len(resolved) {
		return false
	}
	for i := range tokens {
		if !isTokenCompatible(&tokens[i], resolved[i]) {
			return false
		}
	}
	return true
}

// isTokenCompatible checks one token against one resolved role. A token that
// could be day-or-month is compatible with either resolution.
func isTokenCompatible(token *tokenizer.Token, resolved constraints.TokenType) bool {
	if token.PossibleTypes.Contains(resolved) {
		return true
	}
	switch resolved.Kind {
	case constraints.KindDay, constraints.KindMonth, constraints.KindDayOrMonth:
		return token.PossibleTypes.ContainsKind(constraints.KindDay) ||
			token.PossibleTypes.ContainsKind(constraints.KindMonth) ||
			token.PossibleTypes.ContainsKind(constraints.KindDayOrMonth)
	}
	return false
}

// Infer infers the date format for a list of examples with default options
func Infer(dates []string) (*Result, error) {
	return NewEngine(DefaultOptions()).Infer(dates)
}

// InferWithOptions infers the date format for a list of examples with the
// given options
func InferWithOptions(dates []string, opts Options) (*Result, error) {
	return NewEngine(opts).Infer(dates)
}

// InferFormat is a convenience wrapper returning only the format string
func InferFormat(dates []string, preferDayfirst bool) (string, error) {
	result, err := InferWithOptions(dates, Options{PreferDayfirst: preferDayfirst})
	if err != nil {
		return "", err
	}
	return result.Format, nil
}
