// Package errs defines the error taxonomy of the fitwire decoder.
//
// Errors come in two flavors. Fatal errors abort the decode session and are
// returned from Decoder.Decode; they are sentinel values (optionally wrapped
// with context via fmt.Errorf and %w) so callers can test them with errors.Is.
// Non-fatal errors are recorded as DecodeError entries on the decode result
// while decoding continues; real-world FIT files routinely carry individual
// corrupt or sentinel-valued fields that must not abort whole-file decoding.
package errs

import (
	"errors"
	"fmt"
)

// Fatal decode errors. These abort the session.
var (
	// ErrInvalidFitFile indicates the input does not look like a FIT file:
	// bad header size byte, missing ".FIT" marker, or truncated input.
	ErrInvalidFitFile = errors.New("input is not a FIT file")

	// ErrInvalidCRC indicates the stored file CRC does not match the CRC
	// computed over the header and record payload.
	ErrInvalidCRC = errors.New("CRC invalid")

	// ErrInvalidMessageHeader indicates a record header byte that matches
	// neither the normal nor the compressed-timestamp layout.
	ErrInvalidMessageHeader = errors.New("invalid message header")

	// ErrLocalDefinitionNotFound indicates a data message referenced a local
	// message number with no prior definition message.
	ErrLocalDefinitionNotFound = errors.New("local definition message not found")

	// ErrGlobalDefinitionNotFound indicates a global message number absent
	// from the mesg_num type catalogue.
	ErrGlobalDefinitionNotFound = errors.New("global definition message not found")

	// ErrUnknownMessage indicates a message name with no entry in the
	// profile message catalogue.
	ErrUnknownMessage = errors.New("unknown message")

	// ErrBaseTypeMismatch indicates a value could not be reinterpreted as
	// the base type a profile entry requires.
	ErrBaseTypeMismatch = errors.New("base type mismatch")

	// ErrInvalidDeveloperField indicates a developer_data_id or
	// field_description message missing one of its mandatory attributes
	// during developer-data bootstrap.
	ErrInvalidDeveloperField = errors.New("invalid developer field")
)

// OutOfBoundsReadError reports a read past the end of the input slice.
// It is fatal: framing cannot recover once the cursor leaves the buffer.
type OutOfBoundsReadError struct {
	Offset    int
	Requested int
	Remaining int
}

func (e *OutOfBoundsReadError) Error() string {
	return fmt.Sprintf("out of bounds read: attempted to read %d bytes from offset %d, but only %d bytes are available",
		e.Requested, e.Offset, e.Remaining)
}

// Kind tags for non-fatal DecodeError records.
const (
	KindInvalidFieldValue          = "InvalidFieldValue"
	KindDecodeFieldFailed          = "DecodeFieldFailed"
	KindDecodeDeveloperFieldFailed = "DecodeDeveloperFieldFailed"
	KindSizeMismatch               = "SizeMismatch"
	KindDecodeMessageFailed        = "DecodeMessageFailed"
	KindMissingTimestampRef        = "MissingTimestampRef"
	KindInvalidTimestamp           = "InvalidTimestamp"
	KindMissingDeveloperDataDef    = "MissingDeveloperDataDef"
	KindMissingDeveloperFieldDesc  = "MissingDeveloperFieldDescription"
)

// DecodeError is a non-fatal error recorded during decoding. The offending
// field is skipped and decoding continues.
type DecodeError struct {
	// Kind is one of the Kind* constants, machine readable.
	Kind string
	// Message is a human readable description with contextual identifiers
	// (message number, field number, offsets).
	Message string
}

func (e DecodeError) Error() string {
	return e.Kind + ": " + e.Message
}

// FieldError builds a DecodeFieldFailed record for the given message and
// field numbers.
func FieldError(msgNo uint16, fieldNo uint8, reason string) DecodeError {
	return DecodeError{
		Kind:    KindDecodeFieldFailed,
		Message: fmt.Sprintf("failed to decode message %d field %d: %s", msgNo, fieldNo, reason),
	}
}

// DeveloperFieldError builds a DecodeDeveloperFieldFailed record.
func DeveloperFieldError(msgNo uint16, dataIndex uint8, reason string) DecodeError {
	return DecodeError{
		Kind:    KindDecodeDeveloperFieldFailed,
		Message: fmt.Sprintf("failed to decode message %d developer data index %d: %s", msgNo, dataIndex, reason),
	}
}
