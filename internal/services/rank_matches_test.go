package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"trip-match-service/internal/adapters/matrix"
	"trip-match-service/internal/domain"
	"trip-match-service/internal/ports"
)

func coord(lat, lng float64) domain.Coordinates { return domain.Coordinates{Lat: lat, Lng: lng} }

func testTrip(id string, origin, destination domain.Coordinates, direct int) TripDescriptor {
	return TripDescriptor{
		ID:                    id,
		OriginLat:             floatPtr(origin.Lat),
		OriginLng:             floatPtr(origin.Lng),
		DestinationLat:        floatPtr(destination.Lat),
		DestinationLng:        floatPtr(destination.Lng),
		DirectDurationSeconds: intPtr(direct),
	}
}

// Fixture: primary O->D with direct 500s, three candidates. Leg pairs feed
// the mock keyed by coordinates; candidate "far" has no destination-leg
// entry and is therefore unroutable.
var (
	primaryOrigin      = coord(52.52, 13.405)
	primaryDestination = coord(52.391, 13.064)

	nearOrigin      = coord(52.5, 13.4)
	nearDestination = coord(52.4, 13.1)
	midOrigin       = coord(52.55, 13.45)
	midDestination  = coord(52.35, 13.0)
	farOrigin       = coord(53.55, 9.99)
	farDestination  = coord(53.07, 8.8)
)

func testPairs() []matrix.MockPair {
	return []matrix.MockPair{
		{From: primaryOrigin, To: nearOrigin, Seconds: 300},
		{From: nearDestination, To: primaryDestination, Seconds: 200},
		{From: primaryOrigin, To: midOrigin, Seconds: 600},
		{From: midDestination, To: primaryDestination, Seconds: 700},
		{From: primaryOrigin, To: farOrigin, Seconds: 9000},
		// far destination -> primary destination intentionally missing.
	}
}

func testRequest() RankMatchesRequest {
	return RankMatchesRequest{
		Trip: testTrip("", primaryOrigin, primaryDestination, 500),
		Candidates: []TripDescriptor{
			testTrip("mid", midOrigin, midDestination, 400),
			testTrip("far", farOrigin, farDestination, 100),
			testTrip("near", nearOrigin, nearDestination, 600),
		},
	}
}

func TestRankMatchesOrdering(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(testPairs())

	results, err := RankMatches(context.Background(), testRequest(), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len = %d, want 3", len(results))
	}

	// near: 300 + 600 + 200 - 500 = 600
	// mid:  600 + 400 + 700 - 500 = 1200
	// far:  missing destination leg -> unroutable, last
	if results[0].CandidateID != "near" {
		t.Fatalf("first = %q, want near", results[0].CandidateID)
	}
	if s, _ := results[0].Detour.Seconds(); s != 600 {
		t.Fatalf("near detour = %d, want 600", s)
	}
	if results[1].CandidateID != "mid" {
		t.Fatalf("second = %q, want mid", results[1].CandidateID)
	}
	if s, _ := results[1].Detour.Seconds(); s != 1200 {
		t.Fatalf("mid detour = %d, want 1200", s)
	}
	if results[2].CandidateID != "far" {
		t.Fatalf("third = %q, want far", results[2].CandidateID)
	}
	if results[2].Detour.Routable() {
		t.Fatal("far must be unroutable")
	}

	// One origin-leg lookup plus one destination-leg lookup.
	if provider.Calls != 2 {
		t.Fatalf("provider calls = %d, want 2", provider.Calls)
	}
}

func TestRankMatchesEmptyCandidates(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(nil)

	results, err := RankMatches(context.Background(), RankMatchesRequest{
		Trip: testTrip("", primaryOrigin, primaryDestination, 500),
	}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("len = %d, want 0", len(results))
	}
	if provider.Calls != 0 {
		t.Fatalf("provider calls = %d, want 0", provider.Calls)
	}
}

func TestRankMatchesValidationSkipsGateway(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(testPairs())

	req := testRequest()
	req.Candidates[1].DestinationLng = nil

	_, err := RankMatches(context.Background(), req, provider)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Entity != "candidates[1]" || ve.Field != "destination_lng" {
		t.Fatalf("got entity=%q field=%q", ve.Entity, ve.Field)
	}
	if provider.Calls != 0 {
		t.Fatalf("provider calls = %d, want 0", provider.Calls)
	}
}

func TestRankMatchesGatewayFailure(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(nil)
	provider.Fail = &ports.GatewayError{Message: "REQUEST_DENIED"}

	_, err := RankMatches(context.Background(), testRequest(), provider)

	var ge *ports.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
}

func TestRankMatchesIdempotent(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(testPairs())

	first, err := RankMatches(context.Background(), testRequest(), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RankMatches(context.Background(), testRequest(), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%v\n%v", first, second)
	}
}
