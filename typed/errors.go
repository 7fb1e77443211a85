// Package typed defines the pre-flattening typed AST and the ResultFolder
// rewrite framework over it. Folding is fallible: passes report compile
// errors, and the first error aborts the whole fold.
package typed

import "fmt"

// CompileError is the user-facing diagnostic produced when a fold rejects a
// construct. Broken internal invariants are not CompileErrors; they panic.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

func Errorf(format string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...)}
}
