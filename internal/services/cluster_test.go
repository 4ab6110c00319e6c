package services

import (
	"testing"

	"installation-route-service/internal/domain"
)

func stopAt(id int64, lon, lat float64) domain.Stop {
	return domain.Stop{
		Order:  &domain.Order{OrderID: id},
		Coords: domain.Coordinates{Lon: lon, Lat: lat},
	}
}

func TestClusterStopsPartitionsInput(t *testing.T) {
	// Two Sao Paulo points ~1.3 km apart, one Rio point ~360 km away.
	stops := []domain.Stop{
		stopAt(1, -46.6333, -23.5505),
		stopAt(2, -46.6400, -23.5600),
		stopAt(3, -43.1729, -22.9068),
	}

	clusters := ClusterStops(stops, WithinRadius(2))

	if len(clusters) != 2 {
		t.Fatalf("clusters = %d, want 2", len(clusters))
	}

	total := 0
	seen := map[int64]int{}
	for _, c := range clusters {
		total += len(c)
		for _, s := range c {
			seen[s.Order.OrderID]++
		}
	}
	if total != len(stops) {
		t.Fatalf("cluster sizes sum to %d, want %d", total, len(stops))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("order %d appears %d times, want exactly once", id, n)
		}
	}

	sizes := map[int]int{}
	for _, c := range clusters {
		sizes[len(c)]++
	}
	if sizes[2] != 1 || sizes[1] != 1 {
		t.Fatalf("cluster sizes = %v, want one of 2 and one of 1", sizes)
	}
}

func TestClusterStopsChainsBeyondRadius(t *testing.T) {
	// Single-linkage: A-B and B-C are within radius, A-C is not, yet
	// chaining pulls all three into one cluster.
	stops := []domain.Stop{
		stopAt(1, -46.6333, -23.5505),
		stopAt(2, -46.6333, -23.5640), // ~1.5 km south of 1
		stopAt(3, -46.6333, -23.5775), // ~1.5 km south of 2
	}

	clusters := ClusterStops(stops, WithinRadius(2))

	if len(clusters) != 1 || len(clusters[0]) != 3 {
		t.Fatalf("clusters = %v, want one cluster of 3", clusters)
	}
}

func TestClusterStopsEmpty(t *testing.T) {
	if got := ClusterStops(nil, WithinRadius(2)); got != nil {
		t.Fatalf("clusters = %v, want nil", got)
	}
}

func TestChunkStops(t *testing.T) {
	stops := []domain.Stop{
		stopAt(1, 0, 0), stopAt(2, 0, 0), stopAt(3, 0, 0),
		stopAt(4, 0, 0), stopAt(5, 0, 0),
	}

	chunks := ChunkStops(stops, 2)

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if len(chunks[0]) != 2 || len(chunks[1]) != 2 || len(chunks[2]) != 1 {
		t.Fatalf("chunk sizes = %d/%d/%d, want 2/2/1", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}

	// Purely positional: order is preserved across chunks.
	if chunks[0][0].Order.OrderID != 1 || chunks[2][0].Order.OrderID != 5 {
		t.Fatal("chunking reordered stops")
	}
}

func TestChunkStopsInvalidSize(t *testing.T) {
	if got := ChunkStops([]domain.Stop{stopAt(1, 0, 0)}, 0); got != nil {
		t.Fatalf("chunks = %v, want nil for non-positive size", got)
	}
}
