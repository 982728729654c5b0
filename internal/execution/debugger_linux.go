//go:build linux

package execution

import (
	"bufio"
	"os"
	"strings"
)

// DebuggerAttached reports whether a tracer is attached to this process.
func DebuggerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()
	return tracerAttached(bufio.NewScanner(f))
}

func tracerAttached(scanner *bufio.Scanner) bool {
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		pid := strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:"))
		return pid != "" && pid != "0"
	}
	return false
}
