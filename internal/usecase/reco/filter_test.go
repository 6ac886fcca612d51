package reco

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"reco-engine/internal/domain/entity"
)

func recsWithIDs(ids ...int64) []entity.Recommendation {
	out := make([]entity.Recommendation, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.Recommendation{Type: entity.ContentTypeArticle, ID: id})
	}
	return out
}

func TestFilterAndLimit(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int64
		exclude []int64
		limit   int
		want    []int64
	}{
		{"no exclusions", []int64{1, 2, 3}, nil, 10, []int64{1, 2, 3}},
		{"excludes before limiting", []int64{1, 2, 3, 4}, []int64{1, 2}, 2, []int64{3, 4}},
		{"limit truncates", []int64{1, 2, 3}, nil, 2, []int64{1, 2}},
		{"all excluded", []int64{1, 2}, []int64{1, 2}, 10, nil},
		{"empty input", nil, []int64{1}, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAndLimit(recsWithIDs(tt.ids...), tt.exclude, tt.limit)
			if diff := cmp.Diff(recsWithIDs(tt.want...), got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterAndLimit_Idempotent(t *testing.T) {
	recs := recsWithIDs(1, 2, 3, 4, 5)
	once := filterAndLimit(recs, []int64{2}, 3)
	twice := filterAndLimit(once, []int64{2}, 3)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterAndLimit_PreservesOrder(t *testing.T) {
	got := filterAndLimit(recsWithIDs(5, 3, 9, 1), []int64{3}, 10)
	want := recsWithIDs(5, 9, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
}
