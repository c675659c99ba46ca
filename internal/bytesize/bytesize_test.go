package bytesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("PlainNumber", func(t *testing.T) {
		size, err := Parse("8192")
		require.NoError(t, err)
		assert.Equal(t, ByteSize(8192), size)
	})

	t.Run("BinaryUnits", func(t *testing.T) {
		cases := map[string]ByteSize{
			"8Ki":   8 * KiB,
			"8KiB":  8 * KiB,
			"64Mi":  64 * MiB,
			"1Gi":   GiB,
			"2 GiB": 2 * GiB,
		}
		for in, want := range cases {
			size, err := Parse(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, size, in)
		}
	})

	t.Run("DecimalUnits", func(t *testing.T) {
		cases := map[string]ByteSize{
			"100KB": 100 * KB,
			"5M":    5 * MB,
			"1gb":   GB,
		}
		for in, want := range cases {
			size, err := Parse(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, size, in)
		}
	})

	t.Run("FractionalValue", func(t *testing.T) {
		size, err := Parse("1.5Ki")
		require.NoError(t, err)
		assert.Equal(t, ByteSize(1536), size)
	})

	t.Run("RejectsEmpty", func(t *testing.T) {
		_, err := Parse("  ")
		assert.Error(t, err)
	})

	t.Run("RejectsUnknownUnit", func(t *testing.T) {
		_, err := Parse("8kp")
		assert.Error(t, err)
	})

	t.Run("RejectsMissingNumber", func(t *testing.T) {
		_, err := Parse("Ki")
		assert.Error(t, err)
	})
}

func TestUnmarshalText(t *testing.T) {
	var size ByteSize
	require.NoError(t, size.UnmarshalText([]byte("8Ki")))
	assert.Equal(t, 8192, size.Int())

	assert.Error(t, size.UnmarshalText([]byte("bogus")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "8.00KiB", (8 * KiB).String())
	assert.Equal(t, "512B", ByteSize(512).String())
	assert.Equal(t, "1.00GiB", GiB.String())
}
