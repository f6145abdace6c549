package kmeans

import (
	"testing"

	"github.com/hupe1980/kmeans/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitJSON(t *testing.T) {
	req := []byte(`{"points":[[0,0],[0,1],[10,10],[10,11]],"k":2,"max_iter":10,"epsilon":0.001}`)

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			out, err := FitJSON(req, WithCodec(c))
			require.NoError(t, err)

			var resp FitResponse
			require.NoError(t, c.Unmarshal(out, &resp))
			assert.True(t, resp.Converged)
			assert.Equal(t, 3, resp.Iterations)
			assert.Equal(t, [][]float64{{0, 0.5}, {10, 10.5}}, resp.Centroids)
		})
	}
}

func TestFitJSON_FullPrecision(t *testing.T) {
	req := []byte(`{"points":[[0],[1],[1],[10]],"k":2,"max_iter":1,"epsilon":0.001}`)

	out, err := FitJSON(req)
	require.NoError(t, err)

	var resp FitResponse
	require.NoError(t, codec.Default.Unmarshal(out, &resp))
	require.Len(t, resp.Centroids, 2)
	assert.Equal(t, 4.0, resp.Centroids[1][0])

	req = []byte(`{"points":[[0],[10],[1],[0]],"k":2,"max_iter":1,"epsilon":0.001}`)
	out, err = FitJSON(req)
	require.NoError(t, err)
	require.NoError(t, codec.Default.Unmarshal(out, &resp))
	// The mean of 0, 1 and 0 survives the round trip bit for bit.
	assert.Equal(t, 1.0/3, resp.Centroids[0][0])
}

func TestFitJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"Malformed", `{"points":`, ErrInvalidRequest},
		{"MissingK", `{"points":[[0],[1],[2]],"max_iter":10,"epsilon":0.1}`, ErrInvalidRequest},
		{"MissingEpsilon", `{"points":[[0],[1],[2]],"k":2,"max_iter":10}`, ErrInvalidRequest},
		{"MissingPoints", `{"k":2,"max_iter":10,"epsilon":0.1}`, ErrInvalidRequest},
		{"FractionalK", `{"points":[[0],[1],[2]],"k":2.5,"max_iter":10,"epsilon":0.1}`, ErrInvalidRequest},
		{"UnknownField", `{"points":[[0],[1],[2]],"k":2,"max_iter":10,"epsilon":0.1,"maxiter":5}`, ErrInvalidRequest},
		{"TrailingData", `{"points":[[0],[1],[2]],"k":2,"max_iter":10,"epsilon":0.1} {}`, ErrInvalidRequest},
		{"EmptyPoints", `{"points":[],"k":2,"max_iter":10,"epsilon":0.1}`, ErrEmptyInput},
		{"InvalidK", `{"points":[[0],[1],[2]],"k":3,"max_iter":10,"epsilon":0.1}`, ErrInvalidK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FitJSON([]byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, out)
		})
	}
}
