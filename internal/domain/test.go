package domain

import "fmt"

// QualifiedName builds the "{suite}.{test}" name filters and reports use.
func QualifiedName(suite, test string) string {
	return fmt.Sprintf("%s.%s", suite, test)
}
