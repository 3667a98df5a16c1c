package lut

import (
	"fmt"
	"math"

	"github.com/itohio/ntclut/pkg/ntc"
)

// IssueKind classifies a table diagnostic.
type IssueKind int

const (
	// EmptyRange means TStart > TStop; the array body is empty.
	EmptyRange IssueKind = iota
	// OutOfRange means a code falls outside [0, 2^Bits-1].
	OutOfRange
	// Overflow means a code does not fit in uint16.
	Overflow
	// NotMonotonic means a code reverses the direction of the curve.
	NotMonotonic
	// ZeroResolution means Bits is 0; the array has one slot and every code is 0.
	ZeroResolution
)

func (k IssueKind) String() string {
	switch k {
	case EmptyRange:
		return "empty range"
	case OutOfRange:
		return "out of range"
	case Overflow:
		return "uint16 overflow"
	case NotMonotonic:
		return "not monotonic"
	case ZeroResolution:
		return "zero ADC resolution"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue is a problem found in a generated table. Issues never stop generation.
type Issue struct {
	Kind        IssueKind
	Index       int
	Temperature int
	Code        int64
}

func (i Issue) String() string {
	if i.Kind == EmptyRange || i.Kind == ZeroResolution {
		return i.Kind.String()
	}
	return fmt.Sprintf("%s at %d°C (entry %d): code %d", i.Kind, i.Temperature, i.Index, i.Code)
}

// Check reports entries the firmware cannot use as is.
func (t *Table) Check() []Issue {
	var issues []Issue

	if t.Bits == 0 {
		issues = append(issues, Issue{Kind: ZeroResolution, Index: -1, Temperature: t.TStart})
	}

	if t.TStart > t.TStop {
		issues = append(issues, Issue{Kind: EmptyRange, Index: -1, Temperature: t.TStart})
		return issues
	}

	fs := ntc.FullScale(t.Bits)
	dir := 0
	for i, code := range t.Codes {
		issue := Issue{Index: i, Temperature: t.Temperature(i), Code: code}

		if code < 0 || code > fs {
			issue.Kind = OutOfRange
			issues = append(issues, issue)
		}
		if code < 0 || code > math.MaxUint16 {
			issue.Kind = Overflow
			issues = append(issues, issue)
		}

		if i == 0 {
			continue
		}
		step := sign(code - t.Codes[i-1])
		switch {
		case step == 0:
		case dir == 0:
			dir = step
		case step != dir:
			issue.Kind = NotMonotonic
			issues = append(issues, issue)
		}
	}

	return issues
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
