// Package errs provides the structured error type used throughout dockvedic.
// Every package returns *DockError (or wraps one) so that the CLI, the
// logger, and tests can branch on a typed Code rather than string-matching
// messages.
package errs

// Code is a typed error classification, grouped by the failure domain it
// belongs to.
type Code int

const (
	// CodeUnknown is the catch-all for errors that predate this taxonomy.
	CodeUnknown Code = iota

	// CodeBadArgument is returned when a caller-supplied argument violates a
	// precondition: negative population size, zero grid step, mismatched
	// vector lengths passed to Chromosome.SetVector, and similar.
	CodeBadArgument

	// CodeInvalidRequest is returned when a Request object is malformed or
	// addressed to a request ID the receiving object does not handle.
	CodeInvalidRequest

	// CodeFileError is the general parameter-file / docking-site-file I/O
	// failure category.
	CodeFileError

	// CodeFileMissingParameter is returned when a required key is absent
	// from a parameter-file section (e.g. a scoring-function section with
	// no SCORING_FUNCTION key).
	CodeFileMissingParameter

	// CodeFileParseError is returned when a value cannot be coerced to the
	// type its parameter declares (non-numeric GRIDSTEP, malformed vector).
	CodeFileParseError

	// CodeModelError is returned when a model is in a state an operation
	// cannot proceed from: no atoms, no docking site attached, dangling
	// pseudo-atom reference, index out of range in WorkSpace.GetModel.
	CodeModelError

	// CodeAssertion is returned for internal invariant violations that
	// indicate a programming error rather than bad input (e.g. a request ID
	// reaching a switch default after HandleRequest routing).
	CodeAssertion
)

func (c Code) String() string {
	switch c {
	case CodeBadArgument:
		return "BadArgument"
	case CodeInvalidRequest:
		return "InvalidRequest"
	case CodeFileError:
		return "FileError"
	case CodeFileMissingParameter:
		return "FileMissingParameter"
	case CodeFileParseError:
		return "FileParseError"
	case CodeModelError:
		return "ModelError"
	case CodeAssertion:
		return "Assertion"
	default:
		return "Unknown"
	}
}
