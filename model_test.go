package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsOutOfRangeBucketBits(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)

	_, err = New(25)
	assert.Error(t, err)
}

func TestNewDefaultsToPCG32(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.True(t, m.ownSource)
}

func TestWithSourceReplacesDefault(t *testing.T) {
	m, err := New(4, WithSource(newPCG32(1)))
	require.NoError(t, err)
	assert.False(t, m.ownSource)
}

func TestAssociateAndSampleEndToEnd(t *testing.T) {
	m, err := New(8, WithSeed(1))
	require.NoError(t, err)

	name := [4]rune{0, 0, 0, 'a'}
	m.Associate(name, 'b')
	ch := m.Sample(name)
	assert.True(t, ch == 'b' || ch == 0, "got unexpected sample %q", ch)
}

func TestSampleUnknownContextReturnsZero(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, rune(0), m.Sample([4]rune{1, 2, 3, 4}))
}

func TestBucketBitsReportsConstructorArgument(t *testing.T) {
	m, err := New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, m.BucketBits())
}

func TestContinuationCountTracksAssociations(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 0, m.ContinuationCount())

	m.Associate([4]rune{0, 0, 0, 'a'}, 'x')
	m.Associate([4]rune{0, 0, 0, 'a'}, 'y')
	m.Associate([4]rune{0, 0, 0, 'b'}, 'z')
	assert.Equal(t, 3, m.ContinuationCount())
}
