package writer

import "fmt"

// StructuralInvariantError reports an unbalanced indentation scope detected
// while finishing a file. It indicates a bug in the code emitting into the
// writer, not a problem with the input model.
type StructuralInvariantError struct {
	File  string
	Depth int
}

func (e *StructuralInvariantError) Error() string {
	return fmt.Sprintf("writer: unbalanced scopes in %s (depth %d at finish)", e.File, e.Depth)
}
