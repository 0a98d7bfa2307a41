package matrix

import (
	"context"
	"errors"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"trip-match-service/internal/domain"
	"trip-match-service/internal/platform/obs"
	"trip-match-service/internal/ports"
)

// GoogleMatrixProvider implements DurationMatrixProvider using the Google
// Distance Matrix API.
//
// Each Durations invocation issues exactly one API request; there is no
// retry, batch-splitting, or caching. Per-pair failures (e.g. ZERO_RESULTS)
// come back as not-OK cells, while request-level failures are wrapped in a
// ports.GatewayError. The provider is safe for concurrent use.
type GoogleMatrixProvider struct {
	client *maps.Client
}

func NewGoogleMatrixProvider(apiKey string, opts ...maps.ClientOption) (*GoogleMatrixProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &GoogleMatrixProvider{client: client}, nil
}

// Durations fetches one origins x destinations duration grid, driving mode.
func (g *GoogleMatrixProvider) Durations(
	ctx context.Context,
	origins, destinations []domain.Coordinates,
) (_ [][]ports.MatrixCell, err error) {
	defer obs.Time(ctx, "googlematrix.Durations")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return nil, errors.New("get durations: origins and destinations must be non-empty")
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      latLngList(origins),
		Destinations: latLngList(destinations),
		Mode:         maps.TravelModeDriving,
	}

	// The maps client folds a non-OK top-level status into err, so both
	// transport failures and provider rejections land here.
	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, &ports.GatewayError{Message: "distance matrix request failed", Err: err}
	}

	if len(resp.Rows) != len(origins) {
		return nil, &ports.GatewayError{
			Message: fmt.Sprintf("expected %d rows; got %d", len(origins), len(resp.Rows)),
		}
	}

	grid := make([][]ports.MatrixCell, len(resp.Rows))
	for i, row := range resp.Rows {
		if len(row.Elements) != len(destinations) {
			return nil, &ports.GatewayError{
				Message: fmt.Sprintf("row %d: expected %d elements; got %d", i, len(destinations), len(row.Elements)),
			}
		}

		cells := make([]ports.MatrixCell, len(row.Elements))
		for j, el := range row.Elements {
			cell := ports.MatrixCell{Status: el.Status}
			if cell.OK() {
				// Round to whole seconds for domain consistency.
				cell.DurationSeconds = int(math.Round(el.Duration.Seconds()))
			}
			cells[j] = cell
		}
		grid[i] = cells
	}

	return grid, nil
}

func latLngList(coords []domain.Coordinates) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.LatLng()
	}
	return out
}
