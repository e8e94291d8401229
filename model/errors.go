package model

import "fmt"

// ModelError reports an invalid trait combination or a dangling reference on
// a shape. It aborts the run and names the offending shape so the model can
// be fixed; the generator never resolves these silently.
type ModelError struct {
	Shape  ShapeID
	Reason string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model error on %s: %s", e.Shape, e.Reason)
}
