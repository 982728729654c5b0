package containment

import (
	"errors"
	"runtime"
	"runtime/debug"

	"ezc/internal/domain"
)

// Run invokes body under the containment layers, outermost first:
// runtime-fault interceptor, panic interceptor, fatal-assertion checkpoint.
// Whatever happens inside, Run returns normally with the terminal state.
func Run(t *T, body Body) domain.State {
	state := domain.Running
	interceptFaults(t, &state, func() {
		interceptPanics(t, &state, func() {
			checkpoint(t, &state, func() {
				body(t)
			})
		})
	})
	if state == domain.Running {
		state = domain.CompletedNormally
	}
	return state
}

// checkpoint is the resumption point for fatal assertions.
func checkpoint(t *T, state *domain.State, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(abortSignal); ok {
			t.markFailed()
			*state = domain.AbortedByFatalAssertion
			return
		}
		panic(r)
	}()
	fn()
}

// interceptPanics converts any panic that is not a runtime fault into a
// recorded failure.
func interceptPanics(t *T, state *domain.State, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if isRuntimeFault(r) {
			panic(r)
		}
		t.markFailed()
		*state = domain.AbortedByPanic
		var nilPanic *runtime.PanicNilError
		if err, ok := r.(error); ok && errors.As(err, &nilPanic) {
			t.classify("Uncaught panic (nil value)")
			return
		}
		t.classify("Uncaught panic (%T): %v", r, r)
	}()
	fn()
}

// interceptFaults converts runtime errors (nil dereference, division by
// zero, out of range access, memory faults) into a recorded failure.
func interceptFaults(t *T, state *domain.State, fn func()) {
	prev := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(prev)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if !isRuntimeFault(r) {
			panic(r)
		}
		err := r.(runtime.Error)
		t.markFailed()
		*state = domain.AbortedByFault
		t.classify("Runtime fault: %v", err)
		if fa, ok := err.(faultAddr); ok {
			t.printer.Note("Fault address: %#x", fa.Addr())
		}
		if reason := ClassifyFault(err).Reason(); reason != "" {
			t.printer.Note("Reason: %s", reason)
		}
	}()
	fn()
}

func isRuntimeFault(r any) bool {
	err, ok := r.(runtime.Error)
	if !ok {
		return false
	}
	var nilPanic *runtime.PanicNilError
	return !errors.As(err, &nilPanic)
}
