package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Points [][]float64 `json:"points"`
	K      *int        `json:"k"`
}

func TestCodecs(t *testing.T) {
	k := 3
	in := payload{Points: [][]float64{{0.1, 1.0 / 3}, {-2, 1e-300}}, K: &k}

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name)
			require.True(t, ok)
			assert.Equal(t, name, c.Name())

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in.Points, out.Points)
			require.NotNil(t, out.K)
			assert.Equal(t, 3, *out.K)
		})
	}
}

func TestCodecs_Strict(t *testing.T) {
	for _, name := range Names {
		c, _ := ByName(name)
		t.Run(name, func(t *testing.T) {
			var out payload
			assert.Error(t, c.Unmarshal([]byte(`{"points":[[1]],"kk":2}`), &out), "unknown field")
			assert.ErrorIs(t, c.Unmarshal([]byte(`{"k":2} {"k":3}`), &out), ErrTrailingData)
			assert.NoError(t, c.Unmarshal([]byte("{\"k\":2}\n"), &out))
		})
	}
}

func TestCodecs_Interchangeable(t *testing.T) {
	in := [][]float64{{1.0 / 7, 2.5}}

	data, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)

	var out [][]float64
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestByName_Unknown(t *testing.T) {
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}
