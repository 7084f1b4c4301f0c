package tower

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSmallVsSmall(t *testing.T) {
	assert.Equal(t, 0, Compare(FromUint64(5), FromUint64(5)))
	assert.Equal(t, -1, Compare(FromUint64(3), FromUint64(5)))
	assert.Equal(t, 1, Compare(FromUint64(5), FromUint64(3)))
}

func TestSmallAlwaysLessThanLarge(t *testing.T) {
	large := newLarge([]Int{FromUint64(64)}) // 2^64
	assert.True(t, Less(FromUint64(math.MaxUint64), large))
	assert.True(t, Greater(large, FromUint64(math.MaxUint64)))
}

func TestCompareLargeHighestPositionDecides(t *testing.T) {
	a := newLarge([]Int{FromUint64(64), FromUint64(100)})
	b := newLarge([]Int{FromUint64(64), FromUint64(99)})
	assert.True(t, Greater(a, b))
	assert.True(t, Less(b, a))
}

func TestCompareLargeSuffixLongerWins(t *testing.T) {
	a := newLarge([]Int{FromUint64(64), FromUint64(65)})
	b := newLarge([]Int{FromUint64(65)})
	assert.True(t, Greater(a, b))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	values := []Int{
		FromUint64(0), FromUint64(1), FromUint64(1000),
		newLarge([]Int{FromUint64(64)}),
		newLarge([]Int{FromUint64(64), FromUint64(128)}),
		newLarge([]Int{FromUint64(90)}),
	}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, -Compare(a, b), Compare(b, a))
		}
	}
}

func TestCompareIsTransitive(t *testing.T) {
	values := []Int{
		FromUint64(0), FromUint64(2), FromUint64(1000),
		newLarge([]Int{FromUint64(64)}),
		newLarge([]Int{FromUint64(64), FromUint64(128)}),
		newLarge([]Int{FromUint64(200)}),
	}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				if LessOrEqual(a, b) && LessOrEqual(b, c) {
					assert.True(t, LessOrEqual(a, c))
				}
			}
		}
	}
}

func TestCompareWordMatchesCompare(t *testing.T) {
	x := newLarge([]Int{FromUint64(64)})
	assert.Equal(t, Compare(x, FromUint64(3)), CompareWord(x, 3))
	assert.True(t, CompareWord(x, 3) > 0)
	assert.True(t, CompareWord(FromUint64(3), 3) == 0)
}

func TestEqualHashConsistency(t *testing.T) {
	a := newLarge([]Int{FromUint64(10), FromUint64(20)})
	b := newLarge([]Int{FromUint64(10), FromUint64(20)})
	assert.True(t, Equal(a, b))
	assert.Equal(t, a.Hash(), b.Hash())
}
