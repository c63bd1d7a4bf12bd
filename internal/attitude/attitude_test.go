package attitude

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Attitude
		want string
	}{
		{name: "simple", in: New(1, 2, 3), want: "1, 2, 3"},
		{name: "origin", in: Zero(), want: "0, 0, 0"},
		{name: "negative", in: New(-4, 0, -7), want: "-4, 0, -7"},
		{name: "extremes", in: New(math.MinInt32, math.MaxInt32, 0), want: "-2147483648, 2147483647, 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestZero(t *testing.T) {
	assert.Equal(t, Attitude{}, Zero())
	assert.Equal(t, Unknown, Classify(Zero()))
}

func TestAdd(t *testing.T) {
	got := Add(New(1, 2, 3), New(4, 5, 6))
	assert.Equal(t, New(5, 7, 9), got)
	assert.Equal(t, Grace, got.Planet())
	assert.Equal(t, got, New(1, 2, 3).Add(New(4, 5, 6)))
}

func TestAddAssign(t *testing.T) {
	a := New(1, 2, 3)
	a.AddAssign(New(4, 5, 6))
	assert.Equal(t, New(5, 7, 9), a)
}

func TestAddProperties(t *testing.T) {
	samples := []Attitude{
		Zero(),
		New(1, 2, 3),
		New(-7, 11, -13),
		New(math.MaxInt32, math.MinInt32, 42),
		New(-1, -1, -1),
	}

	for _, a := range samples {
		assert.Equal(t, a, Add(a, Zero()), "identity for %v", a)
		for _, b := range samples {
			assert.Equal(t, Add(a, b), Add(b, a), "commutative for %v, %v", a, b)
			for _, c := range samples {
				assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)), "associative for %v, %v, %v", a, b, c)
			}
		}
	}
}

func TestAddWraps(t *testing.T) {
	got := Add(New(math.MaxInt32, math.MinInt32, 0), New(1, -1, 0))
	assert.Equal(t, New(math.MinInt32, math.MaxInt32, 0), got)
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Attitude
		policy  OverflowPolicy
		want    Attitude
		wantErr string
	}{
		{
			name:   "wrap in range",
			a:      New(1, 2, 3),
			b:      New(4, 5, 6),
			policy: PolicyWrap,
			want:   New(5, 7, 9),
		},
		{
			name:   "wrap overflow",
			a:      New(math.MaxInt32, 0, 0),
			b:      New(1, 0, 0),
			policy: PolicyWrap,
			want:   New(math.MinInt32, 0, 0),
		},
		{
			name:   "saturate high",
			a:      New(math.MaxInt32-1, 5, 0),
			b:      New(10, 5, 0),
			policy: PolicySaturate,
			want:   New(math.MaxInt32, 10, 0),
		},
		{
			name:   "saturate low",
			a:      New(0, math.MinInt32, -1),
			b:      New(0, -1, -1),
			policy: PolicySaturate,
			want:   New(0, math.MinInt32, -2),
		},
		{
			name:   "strict in range",
			a:      New(-3, 2, 1),
			b:      New(3, 2, 1),
			policy: PolicyStrict,
			want:   New(0, 4, 2),
		},
		{
			name:    "strict overflow keeps input",
			a:       New(1, 2, math.MaxInt32),
			b:       New(1, 1, 1),
			policy:  PolicyStrict,
			want:    New(1, 2, math.MaxInt32),
			wantErr: "z 2147483647 + 1 exceeds",
		},
		{
			name:    "strict underflow",
			a:       New(math.MinInt32, 0, 0),
			b:       New(-1, 0, 0),
			policy:  PolicyStrict,
			want:    New(math.MinInt32, 0, 0),
			wantErr: "x -2147483648 + -1 is below",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine(tt.a, tt.b, tt.policy)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrOverflow)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    OverflowPolicy
		wantErr bool
	}{
		{in: "", want: PolicyWrap},
		{in: "wrap", want: PolicyWrap},
		{in: "saturate", want: PolicySaturate},
		{in: "error", want: PolicyStrict},
		{in: "strict", want: PolicyStrict},
		{in: "clamp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown overflow policy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverflowPolicyString(t *testing.T) {
	assert.Equal(t, "wrap", PolicyWrap.String())
	assert.Equal(t, "saturate", PolicySaturate.String())
	assert.Equal(t, "error", PolicyStrict.String())
	assert.Equal(t, "OverflowPolicy(9)", OverflowPolicy(9).String())
}
