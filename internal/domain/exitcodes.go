package domain

// Process exit codes.
const (
	// ExitPassed: every test passed (or nothing matched).
	ExitPassed = 0
	// ExitFailed: at least one test failed.
	ExitFailed = 1
	// ExitUsage: bad flags or configuration.
	ExitUsage = 2
	// ExitWorkerNotFound: a worker child could not locate its target test.
	ExitWorkerNotFound = 3
	// ExitWorkerUsage: a worker child rejected its flags or configuration.
	// Kept apart from ExitUsage, which a child shares with a runtime crash.
	ExitWorkerUsage = 4
)

// ExitGoRuntimeCrash is what the Go runtime exits with on an unrecovered
// panic or a fatal error such as a stack overflow.
const ExitGoRuntimeCrash = 2
