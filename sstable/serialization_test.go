package sstable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "model.phi")

	m := NewMatrix(uint32(3), uint32(2))
	m.Set(0, 0, 0.5)
	m.Set(2, 1, 0.125)
	require.NoError(t, Serialize(m, fn))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "3,2\n0,0,5.000000e-01\n2,1,1.250000e-01\n", string(data))

	got, err := Deserialize(fn)
	require.NoError(t, err)
	r, c := got.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(2), c)
	assert.Equal(t, 0.5, got.Get(0, 0))
	assert.Equal(t, 0.0, got.Get(1, 0))
	assert.Equal(t, 0.125, got.Get(2, 1))
}

func TestDeserializeSkipsBadLines(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "model.theta")
	require.NoError(t, os.WriteFile(fn, []byte("2,2\n0,1,2.5\nbroken\n\n1,0,1e-1\n"), 0644))

	m, err := Deserialize(fn)
	require.NoError(t, err)
	assert.Equal(t, 2.5, m.Get(0, 1))
	assert.Equal(t, 0.1, m.Get(1, 0))
}

func TestDeserializeErrors(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"empty":   "",
		"shape":   "2\n",
		"zero":    "0,2\n",
		"huge":    "4294967295,4294967295\n",
		"outside": "2,2\n3,0,1.0\n",
		"value":   "2,2\n0,0,abc\n",
	}
	for name, content := range cases {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
		_, err := Deserialize(fn)
		assert.Error(t, err, name)
	}

	_, err := Deserialize(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = Deserialize(filepath.Join(dir, "huge"))
	assert.ErrorIs(t, err, ErrBadShape)
}
