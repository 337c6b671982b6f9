// SPDX-License-Identifier: MIT

package solver

import "golang.org/x/exp/constraints"

// maxOf returns the largest of its arguments.
func maxOf[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}
