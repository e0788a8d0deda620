package otp

import (
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_LengthAndDigits(t *testing.T) {
	code, err := Generate(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "unexpected character %q", c)
	}

	long, err := Generate(8)
	assert.NoError(t, err)
	assert.Len(t, long, 8)
}

func TestGenerate_DefaultsLength(t *testing.T) {
	code, err := Generate(0)
	assert.NoError(t, err)
	assert.Len(t, code, DefaultLength)

	code, err = Generate(-3)
	assert.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestGenerate_PreservesLeadingZeros(t *testing.T) {
	orig := randInt
	t.Cleanup(func() { randInt = orig })

	randInt = func(io.Reader, *big.Int) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	code, err := Generate(6)
	assert.NoError(t, err)
	assert.Equal(t, "000000", code)
}

func TestGenerate_RandError(t *testing.T) {
	orig := randInt
	t.Cleanup(func() { randInt = orig })

	randInt = func(io.Reader, *big.Int) (*big.Int, error) {
		return nil, errors.New("rand failed")
	}
	_, err := Generate(6)
	assert.Error(t, err)
}

func TestGenerate_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code, err := Generate(6)
		assert.NoError(t, err)
		seen[code] = true
	}
	// 32 draws from a million-code space collapsing to one value would
	// indicate a broken random source.
	assert.Greater(t, len(seen), 1)
}
