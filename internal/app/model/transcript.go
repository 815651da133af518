package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// TimestampLayout is the only accepted turn timestamp format
const TimestampLayout = "HH:MM:SS"

var (
	timestampPattern = regexp.MustCompile(`^\d{2}:[0-5]\d:[0-5]\d$`)
	looseTimestamp   = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,2}):(\d{1,2})$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// TranscriptTurn is a contiguous block of lines spoken by one speaker
type TranscriptTurn struct {
	Speaker   string   `json:"speaker" validate:"required"`
	Lines     []string `json:"lines" validate:"required,min=1"`
	Timestamp string   `json:"timestamp" validate:"required,hhmmss"`
}

// Transcript is the ordered, diarized transcript of one audio file
type Transcript []TranscriptTurn

// Validator returns the shared validator with the hhmmss tag registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("hhmmss", func(fl validator.FieldLevel) bool {
			return IsTimestamp(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the turn invariants
func (t TranscriptTurn) Validate() error {
	return Validator().Struct(t)
}

// Validate checks every turn and reports the first offending index
func (t Transcript) Validate() error {
	for i, turn := range t {
		if err := turn.Validate(); err != nil {
			return fmt.Errorf("turn %d: %w", i, err)
		}
	}
	return nil
}

// Speakers returns the distinct speakers in order of first appearance
func (t Transcript) Speakers() []string {
	return lo.Uniq(lo.Map(t, func(turn TranscriptTurn, _ int) string {
		return turn.Speaker
	}))
}

// LineCount returns the number of lines across all turns
func (t Transcript) LineCount() int {
	return lo.SumBy(t, func(turn TranscriptTurn) int {
		return len(turn.Lines)
	})
}

// IsTimestamp reports whether s is exactly HH:MM:SS
func IsTimestamp(s string) bool {
	return timestampPattern.MatchString(s)
}

// NormalizeTimestamp rewrites H:MM:SS, MM:SS and M:SS forms to HH:MM:SS.
// Anything else is returned unchanged with ok=false.
func NormalizeTimestamp(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if IsTimestamp(s) {
		return s, true
	}
	m := looseTimestamp.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}
	h := 0
	if m[1] != "" {
		h, _ = strconv.Atoi(m[1])
	}
	min, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	if min > 59 || sec > 59 {
		return s, false
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, min, sec), true
}

// ParseTimestamp converts an HH:MM:SS timestamp into an offset
func ParseTimestamp(s string) (time.Duration, error) {
	if !IsTimestamp(s) {
		return 0, fmt.Errorf("timestamp %q does not match %s", s, TimestampLayout)
	}
	parts := strings.Split(s, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	sec, _ := strconv.Atoi(parts[2])
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
