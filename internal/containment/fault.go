package containment

import (
	"runtime"
	"strings"
)

// FaultClass is the kind of runtime fault that stopped a body.
type FaultClass int

const (
	FaultUnknown FaultClass = iota
	FaultAccessViolation
	FaultIntDivideByZero
	FaultArrayBounds
	FaultStackOverflow
	FaultIllegalInstruction
	FaultFloatDivideByZero
	FaultIntOverflow
	FaultNegativeShift
)

var faultReasons = map[FaultClass]string{
	FaultAccessViolation:    "Access Violation",
	FaultIntDivideByZero:    "Integer Division by Zero",
	FaultArrayBounds:        "Array Bounds Exceeded",
	FaultStackOverflow:      "Stack Overflow",
	FaultIllegalInstruction: "Illegal Instruction",
	FaultFloatDivideByZero:  "Float Division by Zero",
	FaultIntOverflow:        "Integer Overflow",
	FaultNegativeShift:      "Negative Shift Amount",
}

// Reason returns the human readable name of the class, or "" for FaultUnknown.
func (c FaultClass) Reason() string {
	return faultReasons[c]
}

// faultPatterns maps runtime error message fragments to classes; first match wins.
var faultPatterns = []struct {
	fragment string
	class    FaultClass
}{
	{"invalid memory address", FaultAccessViolation},
	{"nil pointer dereference", FaultAccessViolation},
	{"unexpected fault address", FaultAccessViolation},
	{"integer divide by zero", FaultIntDivideByZero},
	{"index out of range", FaultArrayBounds},
	{"slice bounds out of range", FaultArrayBounds},
	{"integer overflow", FaultIntOverflow},
	{"negative shift amount", FaultNegativeShift},
	{"floating point", FaultFloatDivideByZero},
	{"stack overflow", FaultStackOverflow},
	{"illegal instruction", FaultIllegalInstruction},
}

// ClassifyFault maps a runtime error onto the fault table.
func ClassifyFault(err runtime.Error) FaultClass {
	msg := err.Error()
	for _, p := range faultPatterns {
		if strings.Contains(msg, p.fragment) {
			return p.class
		}
	}
	return FaultUnknown
}

// faultAddr is implemented by the runtime errors raised for memory faults
// while debug.SetPanicOnFault is in effect.
type faultAddr interface {
	Addr() uintptr
}
