package embeddings

import "fmt"

// VectorLengthError reports a dimension mismatch between two vectors.
type VectorLengthError struct {
	LenA int
	LenB int
}

func (e *VectorLengthError) Error() string {
	return fmt.Sprintf("vector length mismatch: %d vs %d", e.LenA, e.LenB)
}

// EmbedError wraps a backend failure while embedding text.
type EmbedError struct {
	Model string
	Cause error
}

func (e *EmbedError) Error() string {
	return fmt.Sprintf("embedding with %s failed: %v", e.Model, e.Cause)
}

func (e *EmbedError) Unwrap() error {
	return e.Cause
}
