package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a bizbook error code.
type ErrorCode string

const (
	ErrInvalidFormat       ErrorCode = "INVALID_FORMAT"       // parse
	ErrConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION" // parse
	ErrDuplicatePrefix     ErrorCode = "DUPLICATE_PREFIX"     // parse
	ErrUnknownCommand      ErrorCode = "UNKNOWN_COMMAND"      // parse
	ErrDuplicatePerson     ErrorCode = "DUPLICATE_PERSON"     // command
	ErrInvalidIndex        ErrorCode = "INVALID_INDEX"        // command
	ErrTagNotFound         ErrorCode = "TAG_NOT_FOUND"        // command
	ErrNothingToUndo       ErrorCode = "NOTHING_TO_UNDO"      // command
	ErrNothingToRedo       ErrorCode = "NOTHING_TO_REDO"      // command
	ErrNotUndoable         ErrorCode = "NOT_UNDOABLE"         // command
	ErrFeatureNotDeclared  ErrorCode = "FEATURE_NOT_DECLARED" // command
	ErrFolderExists        ErrorCode = "FOLDER_EXISTS"        // command
	ErrFolderNotFound      ErrorCode = "FOLDER_NOT_FOUND"     // command
	ErrFolderInUse         ErrorCode = "FOLDER_IN_USE"        // command
	ErrStorage             ErrorCode = "STORAGE"              // command
	ErrIllegalState        ErrorCode = "ILLEGAL_STATE"        // fatal
	ErrInternal            ErrorCode = "INTERNAL"             // fatal
)

// Kind groups error codes by where they originate.
type Kind int

const (
	// KindParse is malformed command text. Nothing was executed.
	KindParse Kind = iota
	// KindCommand is a valid command that hit an invalid runtime condition.
	KindCommand
	// KindFatal signals misuse of the command engine itself.
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindCommand:
		return "command"
	default:
		return "fatal"
	}
}

// Error is a structured error with a code, a display message and an optional
// usage string for the command that failed to parse.
type Error struct {
	Code    ErrorCode
	Message string
	Usage   string
	Details map[string]any
}

// Error implements the error interface. The result is ready to show a user.
func (e *Error) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

// Kind reports which layer the error belongs to.
func (e *Error) Kind() Kind {
	switch e.Code {
	case ErrInvalidFormat, ErrConstraintViolation, ErrDuplicatePrefix, ErrUnknownCommand:
		return KindParse
	case ErrIllegalState, ErrInternal:
		return KindFatal
	default:
		return KindCommand
	}
}

// NewInvalidFormat creates a parse error carrying the command's usage string.
func NewInvalidFormat(usage string) *Error {
	return &Error{
		Code:    ErrInvalidFormat,
		Message: "Invalid command format!",
		Usage:   usage,
	}
}

// NewInvalidFormatMsg creates a parse error with a specific reason and usage.
func NewInvalidFormatMsg(msg, usage string) *Error {
	return &Error{
		Code:    ErrInvalidFormat,
		Message: "Invalid command format! " + msg,
		Usage:   usage,
	}
}

// NewConstraintViolation creates a parse error for a field value that fails
// its format constraint. msg is the field's constraint message.
func NewConstraintViolation(msg string) *Error {
	return &Error{
		Code:    ErrConstraintViolation,
		Message: msg,
	}
}

// NewDuplicatePrefix creates a parse error for singular prefixes given more
// than once.
func NewDuplicatePrefix(prefixes []string) *Error {
	return &Error{
		Code:    ErrDuplicatePrefix,
		Message: "Multiple values specified for the following single-valued field(s): " + strings.Join(prefixes, " "),
		Details: map[string]any{"prefixes": prefixes},
	}
}

// NewUnknownCommand creates a parse error for an unrecognised command word.
func NewUnknownCommand(word string) *Error {
	return &Error{
		Code:    ErrUnknownCommand,
		Message: "Unknown command",
		Details: map[string]any{"command": word},
	}
}

// NewDuplicatePerson creates an error for an add or edit that would create a
// second record of the same person.
func NewDuplicatePerson() *Error {
	return &Error{
		Code:    ErrDuplicatePerson,
		Message: "This person already exists in the address book",
	}
}

// NewInvalidIndex creates an error for an index outside the displayed list.
func NewInvalidIndex(index int) *Error {
	return &Error{
		Code:    ErrInvalidIndex,
		Message: "The person index provided is invalid",
		Details: map[string]any{"index": index},
	}
}

// NewTagNotFound creates an error for removing a tag the person does not have.
func NewTagNotFound(tag string) *Error {
	return &Error{
		Code:    ErrTagNotFound,
		Message: fmt.Sprintf("The person does not have the tag [%s]", tag),
		Details: map[string]any{"tag": tag},
	}
}

// NewNothingToUndo creates an error for undo with an empty history.
func NewNothingToUndo() *Error {
	return &Error{
		Code:    ErrNothingToUndo,
		Message: "There is nothing to undo",
	}
}

// NewNothingToRedo creates an error for redo with no reverted commands.
func NewNothingToRedo() *Error {
	return &Error{
		Code:    ErrNothingToRedo,
		Message: "There is nothing to redo",
	}
}

// NewNotUndoable creates an error for undo of a command that cannot be undone.
func NewNotUndoable() *Error {
	return &Error{
		Code:    ErrNotUndoable,
		Message: "The last action cannot be undone",
	}
}

// NewFeatureNotDeclared creates an error for unbiz of an unknown feature.
func NewFeatureNotDeclared(feature string) *Error {
	msg := "No business features are declared"
	if feature != "" {
		msg = fmt.Sprintf("The business feature %q has not been declared", feature)
	}
	return &Error{
		Code:    ErrFeatureNotDeclared,
		Message: msg,
		Details: map[string]any{"feature": feature},
	}
}

// NewFolderExists creates an error for saving a tag set that already has a folder.
func NewFolderExists(name string) *Error {
	return &Error{
		Code:    ErrFolderExists,
		Message: fmt.Sprintf("A folder for %q already exists", name),
		Details: map[string]any{"folder": name},
	}
}

// NewFolderNotFound creates an error for deleting a folder that does not exist.
func NewFolderNotFound(name string) *Error {
	return &Error{
		Code:    ErrFolderNotFound,
		Message: fmt.Sprintf("There is no folder for %q", name),
		Details: map[string]any{"folder": name},
	}
}

// NewFolderInUse creates an error for deleting a tag folder whose tag is
// still on at least one person.
func NewFolderInUse(name string, count int) *Error {
	return &Error{
		Code:    ErrFolderInUse,
		Message: fmt.Sprintf("The folder %q still holds %d person(s)", name, count),
		Details: map[string]any{"folder": name, "count": count},
	}
}

// NewStorage wraps a persistence failure.
func NewStorage(err error) *Error {
	msg := "Could not save data to file"
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return &Error{
		Code:    ErrStorage,
		Message: msg,
	}
}

// NewIllegalState creates a fatal error for engine misuse, such as undoing a
// command that never executed.
func NewIllegalState(msg string) *Error {
	return &Error{
		Code:    ErrIllegalState,
		Message: msg,
	}
}

// NewInternal creates a fatal error for unexpected failures.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if err is, or wraps, an *Error with the given code.
func Is(err error, code ErrorCode) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// KindOf returns the kind of err. Errors that are not *Error are fatal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind()
	}
	return KindFatal
}
