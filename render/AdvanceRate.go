package render

import (
	"fmt"
	"math"
)

type rateKind uint8

const (
	rateConstant rateKind = iota
	ratePerInstance
	rateEveryN
)

// AdvanceRate says how many rendered instances pass before a stream moves on to its
// next element.
type AdvanceRate struct {
	kind rateKind
	n    uint32
}

// Constant streams are read once and shared by every instance.
func Constant() AdvanceRate { return AdvanceRate{kind: rateConstant} }

// PerInstance streams hand a new element to each instance.
func PerInstance() AdvanceRate { return AdvanceRate{kind: ratePerInstance, n: 1} }

// EveryN advances after n instances. EveryN(1) is PerInstance and EveryN(0) is Constant.
func EveryN(n uint32) AdvanceRate {
	switch n {
	case 0:
		return Constant()
	case 1:
		return PerInstance()
	}
	return AdvanceRate{kind: rateEveryN, n: n}
}

// Index returns the stream element read by the given instance.
func (r AdvanceRate) Index(instance int) int {
	if r.kind == rateConstant || instance < 0 {
		return 0
	}
	return instance / int(r.n)
}

// Elements returns how many stream elements instanceCount instances consume.
func (r AdvanceRate) Elements(instanceCount int) int {
	if instanceCount <= 0 {
		return 0
	}
	return r.Index(instanceCount-1) + 1
}

// Divisor maps the rate onto an attribute divisor. A divisor of zero would make the
// attribute advance per vertex, so Constant takes the largest divisor instead.
func (r AdvanceRate) Divisor() uint32 {
	if r.kind == rateConstant {
		return math.MaxUint32
	}
	return r.n
}

func (r AdvanceRate) String() string {
	switch r.kind {
	case rateConstant:
		return "constant"
	case ratePerInstance:
		return "per-instance"
	}
	return fmt.Sprintf("every-%d-instances", r.n)
}
