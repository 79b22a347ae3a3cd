package trig

import "golang.org/x/exp/constraints"

// Trigonometric is implemented by float types that carry the degree
// functions as methods.
type Trigonometric[T constraints.Float] interface {
	SinDegree() T
	CosDegree() T
	// Atan2Degree treats the receiver as y.
	Atan2Degree(x T) T
}

// F32 is a single precision angle or vector component.
type F32 float32

// F64 is a double precision angle or vector component.
type F64 float64

var (
	_ Trigonometric[F32] = F32(0)
	_ Trigonometric[F64] = F64(0)
)

func (a F32) SinDegree() F32 { return SinDegree(a) }
func (a F32) CosDegree() F32 { return CosDegree(a) }
func (y F32) Atan2Degree(x F32) F32 { return Atan2Degree(y, x) }

func (a F64) SinDegree() F64 { return SinDegree(a) }
func (a F64) CosDegree() F64 { return CosDegree(a) }
func (y F64) Atan2Degree(x F64) F64 { return Atan2Degree(y, x) }
