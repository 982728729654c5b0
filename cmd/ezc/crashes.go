package main

import (
	"errors"
	"os"
	"time"

	"ezc/pkg/ezc"
)

type node struct {
	next *node
	val  int
}

func depth(n int) int {
	var pad [64]byte
	pad[n%64] = byte(n)
	return depth(n+1) + int(pad[0])
}

func init() {
	ezc.Test("CrashDemo", "Panic", func(t *ezc.T) {
		panic(errors.New("unexpected state"))
	})
	ezc.Test("CrashDemo", "NilDereference", func(t *ezc.T) {
		var n *node
		t.Logf("value: %d", n.next.val)
	})
	ezc.Test("CrashDemo", "IndexOutOfRange", func(t *ezc.T) {
		values := []int{1, 2, 3}
		i := len(values)
		t.Logf("value: %d", values[i])
	})
	// Only process isolation survives the remaining tests.
	ezc.Test("CrashDemo", "GoroutinePanic", func(t *ezc.T) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			panic("panic outside the test goroutine")
		}()
		<-done
	})
	ezc.Test("CrashDemo", "StackOverflow", func(t *ezc.T) {
		t.Logf("depth: %d", depth(0))
	})
	ezc.Test("CrashDemo", "Hang", func(t *ezc.T) {
		time.Sleep(time.Hour)
	})

	if os.Getenv("EZC_DEMO_CRASH") != "1" {
		for _, name := range []string{"Panic", "NilDereference", "IndexOutOfRange", "GoroutinePanic", "StackOverflow", "Hang"} {
			ezc.Disable("CrashDemo", name)
		}
	}
}
