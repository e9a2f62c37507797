package model

import (
	"fmt"
	"strings"
)

// Kind identifies which source skeleton a template produces.
type Kind int

const (
	// KindExecutable is a runnable main program skeleton.
	KindExecutable Kind = iota
	// KindModule is a callable subprogram skeleton with a linkage section.
	KindModule
	// KindEmpty is a blank file.
	KindEmpty
)

// Kinds returns all template kinds in menu order.
func Kinds() []Kind {
	return []Kind{KindExecutable, KindModule, KindEmpty}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindExecutable:
		return "executable"
	case KindModule:
		return "module"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindExecutable && k <= KindEmpty
}

// ParseKind parses a kind name. Matching is case-insensitive and accepts
// the short aliases "exe" and "program".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "executable", "exe", "program":
		return KindExecutable, nil
	case "module", "subprogram":
		return KindModule, nil
	case "empty", "blank":
		return KindEmpty, nil
	default:
		return 0, fmt.Errorf("unknown template kind: %q (expected executable, module or empty)", s)
	}
}

// Format is the source layout convention of a template.
type Format int

const (
	// FormatFixed is the column-sensitive layout with a sequence area and indicator column.
	FormatFixed Format = iota
	// FormatFree is the free-form layout using "*>" comments.
	FormatFree
)

// FormatFromFlag maps a free-format flag to its Format.
func FormatFromFlag(free bool) Format {
	if free {
		return FormatFree
	}
	return FormatFixed
}

// String returns "fixed" or "free".
func (f Format) String() string {
	if f == FormatFree {
		return "free"
	}
	return "fixed"
}

// LineEnding is a line terminator convention.
type LineEnding int

const (
	// LF is the Unix line ending.
	LF LineEnding = iota
	// CRLF is the Windows line ending.
	CRLF
	// CR is the classic Mac OS line ending.
	CR
)

// Literal returns the terminator characters.
func (e LineEnding) Literal() string {
	switch e {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// String returns the lowercase name used in configuration files.
func (e LineEnding) String() string {
	switch e {
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	default:
		return "lf"
	}
}

// ParseLineEnding parses "lf", "crlf" or "cr" (case-insensitive).
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf", "unix":
		return LF, nil
	case "crlf", "windows", "dos":
		return CRLF, nil
	case "cr", "mac":
		return CR, nil
	default:
		return LF, fmt.Errorf("unknown line ending: %q (expected lf, crlf or cr)", s)
	}
}
