package cli

import (
	"errors"

	"github.com/roach88/simgroup/internal/config"
	"github.com/roach88/simgroup/internal/group"
	"github.com/roach88/simgroup/internal/sim"
)

// Error codes for CLI responses.
const (
	ErrCodeInternal        = "E001" // Unexpected failure
	ErrCodeUnreadable      = "E002" // Manifest could not be read or parsed
	ErrCodeUnsupported     = "E003" // Unsupported manifest type or shape
	ErrCodeInvalidManifest = "E004" // Manifest entries failed validation
	ErrCodeNotFound        = "E005" // Catalog or simulation not found
	ErrCodeDatabase        = "E006" // Catalog read or write failed
	ErrCodeUsage           = "E007" // Missing or conflicting flags
	ErrCodeConfig          = "E008" // Invalid configuration
	ErrCodeNoMatchingKey   = "E010" // Grouping attribute not found on the first record
	ErrCodeEmptyInput      = "E011" // Nothing to group
	ErrCodeInconsistent    = "E012" // Attribute missing from a later record
)

// commandError is an error raised by the CLI itself, carrying its code.
type commandError struct {
	Code    string
	Message string
	Err     error
}

func (e *commandError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *commandError) Unwrap() error {
	return e.Err
}

func usageError(message string) error {
	return &commandError{Code: ErrCodeUsage, Message: message}
}

// classifyError maps err to a response code, an exit code and optional
// details for the JSON error payload.
func classifyError(err error) (code string, exit int, details any) {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code, ExitCommandError, nil
	}

	// Checked before group errors: an unsupported manifest wraps one.
	var manErr *sim.ManifestError
	if errors.As(err, &manErr) {
		details := map[string]any{"path": manErr.Path}
		if manErr.Entry >= 0 {
			details["entry"] = manErr.Entry
		}
		switch manErr.Code {
		case sim.ErrCodeUnsupported:
			return ErrCodeUnsupported, ExitCommandError, details
		case sim.ErrCodeInvalid:
			return ErrCodeInvalidManifest, ExitCommandError, details
		default:
			return ErrCodeUnreadable, ExitCommandError, details
		}
	}

	var groupErr *group.Error
	if errors.As(err, &groupErr) {
		details := map[string]any{}
		if groupErr.GroupBy != "" {
			details["by"] = groupErr.GroupBy
		}
		if groupErr.Index >= 0 {
			details["record"] = groupErr.Index
		}
		switch groupErr.Code {
		case group.ErrCodeNoMatchingKey:
			return ErrCodeNoMatchingKey, ExitFailure, details
		case group.ErrCodeEmptyInput:
			return ErrCodeEmptyInput, ExitFailure, details
		case group.ErrCodeInconsistentAttribute:
			return ErrCodeInconsistent, ExitFailure, details
		default:
			return ErrCodeUnsupported, ExitCommandError, details
		}
	}

	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return ErrCodeConfig, ExitCommandError, map[string]any{"field": cfgErr.Field}
	}

	return ErrCodeInternal, ExitFailure, nil
}
