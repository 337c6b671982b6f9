// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// hostKernels is the CPU implementation behind the handler. It keeps no
// per-matrix descriptors, so the values-changed flag is bookkeeping only.
type hostKernels struct {
	valuesChanged bool
}

func (k *hostKernels) matvec(a *Sparse, x, result *vector.Vector, alpha, beta float64) int {
	if a.format != CSR {
		logger.Error("host matvec supports CSR only", "format", a.format.String())
		return 1
	}
	xs := x.Data(memory.Host)
	ys := result.Data(memory.Host)
	if a.ptr == nil || xs == nil || ys == nil {
		logger.Error("host matvec: data not allocated on host")
		return 1
	}
	k.valuesChanged = false
	for i := 0; i < a.rows; i++ {
		sum := 0.0
		for p := a.ptr[i]; p < a.ptr[i+1]; p++ {
			sum += a.vals[p] * xs[a.idx[p]]
		}
		ys[i] = alpha*sum + beta*ys[i]
	}
	result.SetDataUpdated(memory.Host)
	return 0
}

func (k *hostKernels) infNorm(a *Sparse, norm *float64) int {
	if a.format != CSR {
		logger.Error("host inf-norm supports CSR only", "format", a.format.String())
		return 1
	}
	if a.ptr == nil {
		logger.Error("host inf-norm: data not allocated on host")
		return 1
	}
	max := 0.0
	for i := 0; i < a.rows; i++ {
		sum := 0.0
		for p := a.ptr[i]; p < a.ptr[i+1]; p++ {
			sum += math.Abs(a.vals[p])
		}
		if sum > max {
			max = sum
		}
	}
	*norm = max
	return 0
}

func (k *hostKernels) addConst(a *Sparse, c float64) int {
	if a.vals == nil {
		logger.Error("host addConst: data not allocated on host")
		return 1
	}
	for i := range a.vals {
		a.vals[i] += c
	}
	a.SetUpdated(memory.Host)
	return 0
}
