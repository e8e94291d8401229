package runtime

import "fmt"

// MissingResourceError reports an embedded runtime module that could not be
// read. It surfaces only after client text generation has succeeded, since
// modules are copied last.
type MissingResourceError struct {
	Module string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("runtime: embedded module %s not found", e.Module)
}
