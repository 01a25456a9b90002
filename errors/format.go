package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of ReqIF format violation.
type ErrorCode string

const (
	// ErrXMLParse indicates the document could not be parsed as XML.
	ErrXMLParse ErrorCode = "xml-parse-error"
	// ErrNoRoot indicates the document has no root element.
	ErrNoRoot ErrorCode = "reqif-no-root"
	// ErrUnexpectedRoot indicates the root element is not REQ-IF.
	ErrUnexpectedRoot ErrorCode = "reqif-unexpected-root"
	// ErrMissingSection indicates a mandatory structural section is absent.
	ErrMissingSection ErrorCode = "reqif-missing-section"
	// ErrDecode indicates a child element within a section failed its
	// kind-specific decode.
	ErrDecode ErrorCode = "reqif-decode-error"
)

// Format describes a ReqIF structural error with a code and the section the
// error was detected in.
//
//nolint:errname // public API name uses ReqIF domain term.
type Format struct {
	Code    string
	Message string
	Section string
}

// FormatList is an error that wraps one or more format errors. Sections that
// must be reported together (SPEC-TYPES and SPEC-OBJECTS) accumulate into a
// single list.
type FormatList []Format //nolint:errname // public API name, slice error type.

// Error returns a compact summary of the format errors.
func (l FormatList) Error() string {
	switch len(l) {
	case 0:
		return "no format errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Error formats the error for display, including code, message, and section.
func (f *Format) Error() string {
	if f == nil {
		return "format <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", f.Code, f.Message))
	if f.Section != "" {
		b.WriteString(fmt.Sprintf(" in %s", f.Section))
	}
	return b.String()
}

// NewFormat builds a Format with a code, message, and optional section.
func NewFormat(code ErrorCode, msg, section string) Format {
	return Format{Code: string(code), Message: msg, Section: section}
}

// NewFormatf formats a message and builds a Format.
func NewFormatf(code ErrorCode, section, format string, args ...any) Format {
	return NewFormat(code, fmt.Sprintf(format, args...), section)
}

// AsFormats extracts format errors from an error returned by the parser.
func AsFormats(err error) ([]Format, bool) {
	list, ok := asFormatList(err)
	if !ok {
		return nil, false
	}
	return []Format(list), true
}

func asFormatList(err error) (FormatList, bool) {
	if err == nil {
		return nil, false
	}
	var list FormatList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *FormatList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
