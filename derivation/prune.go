package derivation

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Signer is implemented by derivation types which provide a structural
// signature for hashing. Derivations not implementing Signer are hashed as they are.
type Signer interface {
	Signature() any
}

// Identity is a postprocessing hook leaving a chart cell unchanged.
func Identity[T any](ds []T) ([]T, error) {
	return ds, nil
}

// Dedup is a postprocessing hook removing structurally equal derivations from
// a chart cell. The first occurrence of a derivation is kept; the order of
// derivations is preserved.
func Dedup[T any](ds []T) ([]T, error) {
	seen := make(map[string]struct{}, len(ds))
	out := make([]T, 0, len(ds))
	for _, d := range ds {
		h, err := hash(d)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, d)
	}
	if dropped := len(ds) - len(out); dropped > 0 {
		tracer().Debugf("dedup dropped %d of %d derivations", dropped, len(ds))
	}
	return out, nil
}

func hash(d any) (string, error) {
	if s, ok := d.(Signer); ok {
		d = s.Signature()
	}
	h, err := structhash.Hash(d, 1)
	if err != nil {
		return "", fmt.Errorf("cannot hash derivation: %w", err)
	}
	return h, nil
}

// TopK returns a postprocessing hook keeping at most k derivations per chart cell.
// k ≤ 0 keeps every derivation.
func TopK[T any](k int) func([]T) ([]T, error) {
	return func(ds []T) ([]T, error) {
		if k <= 0 || len(ds) <= k {
			return ds, nil
		}
		return ds[:k:k], nil
	}
}

// Chain combines postprocessing hooks, applying them from left to right.
func Chain[T any](hooks ...func([]T) ([]T, error)) func([]T) ([]T, error) {
	return func(ds []T) ([]T, error) {
		var err error
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if ds, err = h(ds); err != nil {
				return nil, err
			}
		}
		return ds, nil
	}
}
