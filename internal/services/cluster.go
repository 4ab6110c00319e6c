package services

import "installation-route-service/internal/domain"

// Linkage decides whether a candidate stop belongs to a cluster.
// Isolating the membership test lets the clustering policy change
// (e.g. centroid-bounded) without touching the fixed-point loop.
type Linkage func(cluster []domain.Stop, candidate domain.Stop) bool

// WithinRadius is single-linkage membership: the candidate joins if it
// is within radiusKm of any current cluster member. Note the radius
// bounds each edge, not the cluster diameter; chained stops can grow a
// cluster well beyond 2x the radius.
func WithinRadius(radiusKm float64) Linkage {
	return func(cluster []domain.Stop, candidate domain.Stop) bool {
		for _, member := range cluster {
			if domain.DistanceKm(member.Coords, candidate.Coords) <= radiusKm {
				return true
			}
		}
		return false
	}
}

// ClusterStops partitions stops by agglomerative growth: seed a cluster
// with the first remaining stop, then sweep the working set absorbing
// every stop the linkage accepts, repeating until a full pass adds
// nothing. Quadratic per sweep; fine for the tens of stops a planning
// run sees.
//
// Cluster order and intra-cluster order reflect discovery order, not
// geography; sequencing happens downstream.
func ClusterStops(stops []domain.Stop, link Linkage) [][]domain.Stop {
	remaining := make([]domain.Stop, len(stops))
	copy(remaining, stops)

	var clusters [][]domain.Stop
	for len(remaining) > 0 {
		cluster := []domain.Stop{remaining[0]}
		remaining = remaining[1:]

		for {
			grew := false
			next := remaining[:0]
			for _, s := range remaining {
				if link(cluster, s) {
					cluster = append(cluster, s)
					grew = true
					continue
				}
				next = append(next, s)
			}
			remaining = next
			if !grew {
				break
			}
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}

// ChunkStops splits a cluster into contiguous segments of at most
// maxStops each, preserving order. The final segment may be smaller.
func ChunkStops(stops []domain.Stop, maxStops int) [][]domain.Stop {
	if maxStops <= 0 || len(stops) == 0 {
		return nil
	}

	chunks := make([][]domain.Stop, 0, (len(stops)+maxStops-1)/maxStops)
	for start := 0; start < len(stops); start += maxStops {
		end := start + maxStops
		if end > len(stops) {
			end = len(stops)
		}
		chunks = append(chunks, stops[start:end])
	}

	return chunks
}
