package kmeans

import (
	"errors"
	"fmt"
)

// FitRequest is the wire form of a fit call. Every field is required.
type FitRequest struct {
	Points  [][]float64 `json:"points"`
	K       *int        `json:"k"`
	MaxIter *int        `json:"max_iter"`
	Epsilon *float64    `json:"epsilon"`
}

// FitResponse is the wire form of a fit result. Coordinates keep full
// float64 precision.
type FitResponse struct {
	Centroids  [][]float64 `json:"centroids"`
	Iterations int         `json:"iterations"`
	Converged  bool        `json:"converged"`
}

func (r *FitRequest) validate() error {
	var missing []error
	if r.Points == nil {
		missing = append(missing, errors.New("points"))
	}
	if r.K == nil {
		missing = append(missing, errors.New("k"))
	}
	if r.MaxIter == nil {
		missing = append(missing, errors.New("max_iter"))
	}
	if r.Epsilon == nil {
		missing = append(missing, errors.New("epsilon"))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %w", ErrInvalidRequest, errors.Join(missing...))
	}
	return nil
}

// FitJSON decodes a FitRequest with the configured codec, runs FitResult and
// encodes the FitResponse. It is the entry point for callers that cross a
// process or language boundary.
func FitJSON(data []byte, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	var req FitRequest
	if err := o.codec.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	res, err := FitResult(req.Points, *req.K, *req.MaxIter, *req.Epsilon, opts...)
	if err != nil {
		return nil, err
	}

	return o.codec.Marshal(FitResponse{
		Centroids:  res.Centroids,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	})
}
