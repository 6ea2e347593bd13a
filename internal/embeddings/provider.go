// Package embeddings provides the document-embedding boundary used for
// semantic similarity. The scorer only sees the Provider interface, so it can
// be tested with a deterministic stub and degrades cleanly when no backend is
// available.
package embeddings

import (
	"context"
	"math"
)

// Provider embeds text into a fixed-length float vector.
//
// Implementations must be deterministic for the same input text and model,
// and safe for concurrent use: the provider is loaded once per process and
// shared across scoring workers.
type Provider interface {
	ModelID() string
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine computes cosine similarity between two vectors of equal length.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &VectorLengthError{LenA: len(a), LenB: len(b)}
	}
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0, nil
	}
	return dot / den, nil
}

// Similarity embeds both texts with the provider and returns their cosine
// similarity clamped to [0, 1]. Negative cosine values carry no ranking
// signal for document matching and are floored at zero.
func Similarity(ctx context.Context, p Provider, textA, textB string) (float64, error) {
	va, err := p.Embed(ctx, textA)
	if err != nil {
		return 0, err
	}
	vb, err := p.Embed(ctx, textB)
	if err != nil {
		return 0, err
	}
	cos, err := Cosine(va, vb)
	if err != nil {
		return 0, err
	}
	if cos < 0 {
		cos = 0
	}
	if cos > 1 {
		cos = 1
	}
	return cos, nil
}
