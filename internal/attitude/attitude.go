// Package attitude defines the accumulated satellite attitude vector and the
// classifier that maps it to the planet it points toward.
package attitude

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrOverflow is returned by Combine under PolicyStrict when a component sum
// does not fit in int32.
var ErrOverflow = errors.New("attitude overflow")

// Attitude is an x, y, z orientation vector. The zero value is the origin.
type Attitude struct {
	X int32
	Y int32
	Z int32
}

// Zero returns the origin attitude (0, 0, 0).
func Zero() Attitude {
	return Attitude{}
}

// New returns the attitude (x, y, z).
func New(x, y, z int32) Attitude {
	return Attitude{X: x, Y: y, Z: z}
}

// Add returns a+b component-wise. Components wrap on overflow, matching
// native int32 addition.
func Add(a, b Attitude) Attitude {
	return Attitude{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Add returns a+b with wrapping arithmetic.
func (a Attitude) Add(b Attitude) Attitude {
	return Add(a, b)
}

// AddAssign adds b into a in place.
func (a *Attitude) AddAssign(b Attitude) {
	*a = Add(*a, b)
}

// String formats the attitude as "x, y, z".
func (a Attitude) String() string {
	buf := make([]byte, 0, 36)
	buf = strconv.AppendInt(buf, int64(a.X), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(a.Y), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(a.Z), 10)
	return string(buf)
}

// Components returns the vector as an array in x, y, z order.
func (a Attitude) Components() [3]int32 {
	return [3]int32{a.X, a.Y, a.Z}
}

// OverflowPolicy selects how Combine treats component sums outside int32.
type OverflowPolicy int

const (
	// PolicyWrap wraps around like native int32 addition.
	PolicyWrap OverflowPolicy = iota
	// PolicySaturate clamps to math.MinInt32 or math.MaxInt32.
	PolicySaturate
	// PolicyStrict rejects the combination with ErrOverflow.
	PolicyStrict
)

// String returns the config name of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case PolicyWrap:
		return "wrap"
	case PolicySaturate:
		return "saturate"
	case PolicyStrict:
		return "error"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParsePolicy maps a config value (wrap, saturate, error) to a policy.
// An empty string selects PolicyWrap.
func ParsePolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "", "wrap":
		return PolicyWrap, nil
	case "saturate":
		return PolicySaturate, nil
	case "error", "strict":
		return PolicyStrict, nil
	default:
		return PolicyWrap, fmt.Errorf("unknown overflow policy %q (want wrap, saturate or error)", s)
	}
}

// Combine returns a+b under the given overflow policy. Under PolicyStrict an
// overflowing sum returns a unchanged and an error wrapping ErrOverflow.
func Combine(a, b Attitude, policy OverflowPolicy) (Attitude, error) {
	if policy == PolicyWrap {
		return Add(a, b), nil
	}

	axes := [3]string{"x", "y", "z"}
	lhs, rhs := a.Components(), b.Components()
	var out [3]int32
	for i := range lhs {
		sum := int64(lhs[i]) + int64(rhs[i])
		switch {
		case sum > math.MaxInt32:
			if policy == PolicyStrict {
				return a, fmt.Errorf("%w: %s %d + %d exceeds %d", ErrOverflow, axes[i], lhs[i], rhs[i], math.MaxInt32)
			}
			out[i] = math.MaxInt32
		case sum < math.MinInt32:
			if policy == PolicyStrict {
				return a, fmt.Errorf("%w: %s %d + %d is below %d", ErrOverflow, axes[i], lhs[i], rhs[i], math.MinInt32)
			}
			out[i] = math.MinInt32
		default:
			out[i] = int32(sum)
		}
	}
	return Attitude{X: out[0], Y: out[1], Z: out[2]}, nil
}
