package services

import (
	"slices"
	"time"

	"installation-route-service/internal/domain"
)

// Sort key for stops with no delivery date; sorts after any real date.
const undatedSentinel = "9999-12-31"

func dateKey(s domain.Stop) string {
	if s.Order.DeliveryDate == nil {
		return undatedSentinel
	}
	return s.Order.DeliveryDate.Format("2006-01-02")
}

// attachUndated decides where a stop without a delivery date goes.
// Current policy: append to whichever bucket is open, or start a new
// one if none is. Isolated here so the rule can be swapped without
// touching the bucketing loop.
func attachUndated(buckets [][]domain.Stop, s domain.Stop) [][]domain.Stop {
	if len(buckets) == 0 {
		return append(buckets, []domain.Stop{s})
	}
	buckets[len(buckets)-1] = append(buckets[len(buckets)-1], s)
	return buckets
}

// BucketByDate groups stops into windows of delivery-date proximity.
//
// Stops are sorted ascending by date (undated last), then swept with an
// anchor fixed at bucket-open time: a dated stop within windowDays of
// the anchor (inclusive) joins the open bucket, otherwise it opens a
// new bucket and becomes the new anchor. Undated stops follow the
// attachUndated policy and never move the anchor.
func BucketByDate(stops []domain.Stop, windowDays int) [][]domain.Stop {
	if len(stops) == 0 {
		return nil
	}

	sorted := make([]domain.Stop, len(stops))
	copy(sorted, stops)
	slices.SortStableFunc(sorted, func(a, b domain.Stop) int {
		ka, kb := dateKey(a), dateKey(b)
		if ka < kb {
			return -1
		}
		if ka > kb {
			return 1
		}
		return 0
	})

	var buckets [][]domain.Stop
	var anchor *domain.Stop

	for _, s := range sorted {
		if s.Order.DeliveryDate == nil {
			buckets = attachUndated(buckets, s)
			continue
		}

		if anchor == nil {
			buckets = append(buckets, []domain.Stop{s})
			stop := s
			anchor = &stop
			continue
		}

		diff := s.Order.DeliveryDate.Sub(*anchor.Order.DeliveryDate).Hours() / 24
		if diff < 0 {
			diff = -diff
		}

		if int(diff) <= windowDays {
			buckets[len(buckets)-1] = append(buckets[len(buckets)-1], s)
			continue
		}

		buckets = append(buckets, []domain.Stop{s})
		stop := s
		anchor = &stop
	}

	return buckets
}

// GroupDateRange returns the earliest and latest delivery dates present
// in the given stops; nil bounds when no stop carries a date.
func GroupDateRange(stops []domain.Stop) (from, to *time.Time) {
	for _, s := range stops {
		d := s.Order.DeliveryDate
		if d == nil {
			continue
		}
		if from == nil || d.Before(*from) {
			from = d
		}
		if to == nil || d.After(*to) {
			to = d
		}
	}
	return from, to
}
