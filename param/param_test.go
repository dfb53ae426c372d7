package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canautumn/tapkee/eigen"
)

func TestValueTypedReads(t *testing.T) {
	b, err := Bool(true).Bool()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := Int(42).Int()
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	f, err := Float(1.5).Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := String("dense").String()
	require.NoError(t, err)
	assert.Equal(t, "dense", s)
}

func TestValueWrongKind(t *testing.T) {
	_, err := Int(1).Bool()
	require.ErrorIs(t, err, ErrWrongType)

	_, err = Bool(true).Float()
	require.ErrorIs(t, err, ErrWrongType)

	_, err = Float(0.5).Int()
	require.ErrorIs(t, err, ErrWrongType)
}

func TestEnumAs(t *testing.T) {
	v := Enum(eigen.Power)

	got, err := EnumAs[eigen.Backend](v)
	require.NoError(t, err)
	assert.Equal(t, eigen.Power, got)

	// Wrong concrete enum type is a read-time type error.
	type other int
	_, err = EnumAs[other](v)
	require.ErrorIs(t, err, ErrWrongType)

	// Non-enum kind.
	_, err = EnumAs[eigen.Backend](Int(1))
	require.ErrorIs(t, err, ErrWrongType)
}

func TestFuncAs(t *testing.T) {
	called := false
	v := Func(func(float64) { called = true })

	fn, err := FuncAs[func(float64)](v)
	require.NoError(t, err)
	fn(0.5)
	assert.True(t, called)

	_, err = FuncAs[func() bool](v)
	require.ErrorIs(t, err, ErrWrongType)
}

func TestMapMissingKey(t *testing.T) {
	m := Map{}

	_, err := m.Int(KeyTargetDimension)
	require.ErrorIs(t, err, ErrMissing)

	_, err = m.Bool(KeyCheckConnectivity)
	require.ErrorIs(t, err, ErrMissing)

	_, err = m.Float(KeyEigenShift)
	require.ErrorIs(t, err, ErrMissing)
}

func TestValidateAndDefaultMissingMethod(t *testing.T) {
	// The method selector is required no matter what else is present.
	for _, m := range []Map{
		nil,
		{},
		{KeyTargetDimension: Int(3), KeyCheckConnectivity: Bool(false)},
	} {
		_, err := ValidateAndDefault(m)
		require.ErrorIs(t, err, ErrMissing)
	}
}

func TestValidateAndDefaultWrongMethodKind(t *testing.T) {
	_, err := ValidateAndDefault(Map{KeyMethod: String("pca")})
	require.ErrorIs(t, err, ErrWrongType)
}

func TestValidateAndDefaultFillsDefaults(t *testing.T) {
	type methodTag int
	in := Map{KeyMethod: Enum(methodTag(1))}

	out, err := ValidateAndDefault(in)
	require.NoError(t, err)

	target, err := out.Int(KeyTargetDimension)
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetDimension, target)

	shift, err := out.Float(KeyEigenShift)
	require.NoError(t, err)
	assert.Equal(t, DefaultEigenShift, shift)

	trace, err := out.Float(KeyTraceShift)
	require.NoError(t, err)
	assert.Equal(t, DefaultTraceShift, trace)

	check, err := out.Bool(KeyCheckConnectivity)
	require.NoError(t, err)
	assert.True(t, check)

	cols, err := out.Bool(KeyOutputColumnsAreSamples)
	require.NoError(t, err)
	assert.False(t, cols)

	backend, err := EnumAs[eigen.Backend](out[KeyEigenBackend])
	require.NoError(t, err)
	assert.Equal(t, eigen.Auto, backend)

	// Input map is untouched.
	assert.Len(t, in, 1)
}

func TestValidateAndDefaultDoesNotOverride(t *testing.T) {
	type methodTag int
	in := Map{
		KeyMethod:          Enum(methodTag(1)),
		KeyTargetDimension: Int(7),
	}

	out, err := ValidateAndDefault(in)
	require.NoError(t, err)

	target, err := out.Int(KeyTargetDimension)
	require.NoError(t, err)
	assert.Equal(t, 7, target)
}

func TestValidateAndDefaultIdempotent(t *testing.T) {
	type methodTag int
	in := Map{KeyMethod: Enum(methodTag(1))}

	once, err := ValidateAndDefault(in)
	require.NoError(t, err)
	twice, err := ValidateAndDefault(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}
