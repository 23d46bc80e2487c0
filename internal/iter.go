// Package internal holds helpers shared by the bf packages.
package internal

import (
	"iter"
)

// IterSeq2Concat yields every pair of each sequence in turn.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Map collects a sequence into a map. Later keys replace earlier ones.
func IterSeq2Map[K comparable, V any](seq iter.Seq2[K, V]) map[K]V {
	out := map[K]V{}
	for key, value := range seq {
		out[key] = value
	}
	return out
}
