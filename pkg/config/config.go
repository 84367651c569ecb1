package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConfiguration reports a configuration value that is not a
// recognized key-value structure for the rule. It is returned before any
// validation pass runs.
var ErrUnknownConfiguration = errors.New("unknown configuration")

// Severity is the level attached to reported violations.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the configuration spelling of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// ParseSeverity converts a configuration string into a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityWarning, fmt.Errorf("%w: unrecognized severity %q", ErrUnknownConfiguration, value)
}

// Validation selects which checkers run and how import lines are compared.
// It is read-only during a validation pass.
// Field tags use mapstructure for viper unmarshalling.
type Validation struct {
	IgnoreCase              bool   `mapstructure:"ignore_case"`
	IgnoreDuplicatedImports bool   `mapstructure:"ignore_duplicated"`
	IgnoreImportsOrder      bool   `mapstructure:"ignore_order"`
	IgnoreImportsPosition   bool   `mapstructure:"ignore_position"`
	Severity                string `mapstructure:"severity"`
}

// Default returns the configuration used when no config file is present.
func Default() Validation {
	return Validation{Severity: SeverityWarning.String()}
}

// Validate checks that the loaded values are usable.
func (v Validation) Validate() error {
	_, err := ParseSeverity(v.Severity)
	return err
}

// SeverityLevel returns the parsed severity, falling back to warning for a
// value that Validate would have rejected.
func (v Validation) SeverityLevel() Severity {
	level, err := ParseSeverity(v.Severity)
	if err != nil {
		return SeverityWarning
	}
	return level
}
