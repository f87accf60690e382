// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted, read-only lookup table over values
// identified by a string key.
package index

import (
	"fmt"
	"slices"
	"strings"
)

// Index is a generic sorted array index. Values sharing a key keep their
// original relative order.
type Index[V fmt.Stringer] struct {
	// sorted is ordered by key and then by original position.
	sorted []V
}

// New creates an index over a copy of the given values, keyed by their
// String method. The values slice itself is not modified.
func New[V fmt.Stringer](values []V) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.String(), b.String())
	})

	return &Index[V]{
		sorted: sorted,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.sorted)
}

// Search returns all values whose key equals key, or nil if there are none.
// The returned slice must not be modified.
func (idx *Index[V]) Search(key string) []V {
	i, found := slices.BinarySearchFunc(idx.sorted, key, func(v V, k string) int {
		return strings.Compare(v.String(), k)
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.sorted) && idx.sorted[j].String() == key {
		j++
	}
	return idx.sorted[i:j:j]
}
