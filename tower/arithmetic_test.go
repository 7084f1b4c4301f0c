package tower

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l0vest0rm/a002845/internal/towererr"
)

func sample() []Int {
	return []Int{
		FromUint64(0),
		FromUint64(1),
		FromUint64(2),
		FromUint64(7),
		FromUint64(1000),
		FromUint64(math.MaxUint64 - 1),
		Exp2(FromUint64(64)),                     // 2^64
		Exp2(FromUint64(100)),                    // 2^100
		Add(Exp2(FromUint64(64)), FromUint64(5)), // 2^64 + 5
	}
}

func TestAddCommutative(t *testing.T) {
	xs := sample()
	for _, x := range xs {
		for _, y := range xs {
			assert.True(t, Equal(Add(x, y), Add(y, x)), "x=%v y=%v", x, y)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	xs := sample()
	for _, x := range xs {
		for _, y := range xs {
			assert.True(t, Equal(Mul(x, y), Mul(y, x)), "x=%v y=%v", x, y)
		}
	}
}

func TestAddAssociative(t *testing.T) {
	xs := sample()
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				left := Add(Add(x, y), z)
				right := Add(x, Add(y, z))
				assert.True(t, Equal(left, right))
			}
		}
	}
}

func TestMulAssociative(t *testing.T) {
	xs := sample()
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				left := Mul(Mul(x, y), z)
				right := Mul(x, Mul(y, z))
				assert.True(t, Equal(left, right))
			}
		}
	}
}

func TestIdentities(t *testing.T) {
	one := FromUint64(1)
	zero := Int{}
	for _, x := range sample() {
		assert.True(t, Equal(Add(x, zero), x))
		assert.True(t, Equal(Mul(x, one), x))
		assert.True(t, Equal(Mul(x, zero), zero))
	}
}

func TestExp2Zero(t *testing.T) {
	assert.True(t, Equal(Exp2(Int{}), FromUint64(1)))
}

func TestExp2Additive(t *testing.T) {
	as := []Int{FromUint64(0), FromUint64(3), FromUint64(63), FromUint64(64), FromUint64(100)}
	for _, a := range as {
		for _, b := range as {
			left := Mul(Exp2(a), Exp2(b))
			right := Exp2(Add(a, b))
			assert.True(t, Equal(left, right), "a=%v b=%v", a, b)
		}
	}
}

func TestLog2Exp2RoundTrip(t *testing.T) {
	for _, k := range []Int{FromUint64(0), FromUint64(5), FromUint64(63), FromUint64(64), FromUint64(500)} {
		got, err := Log2(Exp2(k))
		require.NoError(t, err)
		assert.True(t, Equal(got, k))
	}
}

func TestExp2Log2RoundTripOnPowersOfTwo(t *testing.T) {
	for _, x := range []Int{FromUint64(1), FromUint64(2), FromUint64(1024), Exp2(FromUint64(64)), Exp2(FromUint64(200))} {
		k, err := Log2(x)
		require.NoError(t, err)
		assert.True(t, Equal(Exp2(k), x))
	}
}

func TestPowerOfExp2(t *testing.T) {
	k := FromUint64(7)
	e := FromUint64(11)
	got, err := Power(Exp2(k), e)
	require.NoError(t, err)
	assert.True(t, Equal(got, Exp2(Mul(k, e))))
}

func TestPlusOneOverflowsToLarge(t *testing.T) {
	got := PlusOne(FromUint64(math.MaxUint64))
	want := Exp2(FromUint64(64))
	assert.True(t, Equal(got, want))
	assert.False(t, got.IsSmall())
	assert.Equal(t, []Int{FromUint64(64)}, got.Positions())
}

func TestAddMaxUint64PlusOneEqualsExp2_64(t *testing.T) {
	got := Add(FromUint64(math.MaxUint64), FromUint64(1))
	want := Exp2(FromUint64(64))
	assert.True(t, Equal(got, want))
	assert.False(t, got.IsSmall())
	assert.Equal(t, []Int{FromUint64(64)}, got.Positions())
}

func TestExp2_64TimesExp2_64EqualsExp2_128(t *testing.T) {
	x := Exp2(FromUint64(64))
	got := Mul(x, x)
	want := Exp2(FromUint64(128))
	assert.True(t, Equal(got, want))
}

func TestMulByExp2Literal(t *testing.T) {
	got := MulByExp2(FromUint64(3), FromUint64(2))
	assert.True(t, Equal(got, FromUint64(12)))
}

func TestExp2Literal(t *testing.T) {
	assert.True(t, Equal(Exp2(FromUint64(3)), FromUint64(8)))
}

func TestLog2Literal(t *testing.T) {
	got, err := Log2(FromUint64(1024))
	require.NoError(t, err)
	assert.True(t, Equal(got, FromUint64(10)))
}

func TestLog2NotPowerOfTwoFails(t *testing.T) {
	_, err := Log2(FromUint64(6))
	assert.ErrorIs(t, err, towererr.NotPowerOfTwo)
}

func TestMaxUint64SquaredExceedsThree(t *testing.T) {
	maxWord := new(big.Int).SetUint64(math.MaxUint64)
	bigX := new(big.Int).Mul(maxWord, maxWord)

	x := bigIntToIntForTest(bigX)

	assert.True(t, Greater(x, FromUint64(3)))
	assert.True(t, Less(FromUint64(3), x))
}

// bigIntToIntForTest builds a tower.Int bit by bit from a non-negative
// big.Int, independent of the convert package (which itself depends on
// tower and would create an import cycle from inside this package's
// tests).
func bigIntToIntForTest(b *big.Int) Int {
	if b.IsUint64() {
		return FromUint64(b.Uint64())
	}
	var pos []Int
	tmp := new(big.Int).Set(b)
	for bit := 0; tmp.Sign() != 0; bit++ {
		if tmp.Bit(0) == 1 {
			pos = append(pos, FromUint64(uint64(bit)))
		}
		tmp.Rsh(tmp, 1)
	}
	return FromPositions(pos)
}
