package reco

import (
	"testing"

	"reco-engine/internal/domain/entity"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name    string
		sources []entity.Source
		want    string
	}{
		{
			name:    "collaborative wins over everything",
			sources: []entity.Source{entity.SourceContent, entity.SourceTrending, entity.SourceCollaborative},
			want:    "Because users with similar interests liked this",
		},
		{
			name:    "trending wins over content",
			sources: []entity.Source{entity.SourceContent, entity.SourceTrending},
			want:    "Trending in the community",
		},
		{
			name:    "content alone",
			sources: []entity.Source{entity.SourceContent},
			want:    "Based on your interests and past activity",
		},
		{
			name:    "no sources falls back to default",
			sources: nil,
			want:    "Recommended for you",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := explain(tt.sources); got != tt.want {
				t.Fatalf("explain(%v) = %q, want %q", tt.sources, got, tt.want)
			}
		})
	}
}

func TestExplain_OrderIndependent(t *testing.T) {
	a := explain([]entity.Source{entity.SourceTrending, entity.SourceCollaborative})
	b := explain([]entity.Source{entity.SourceCollaborative, entity.SourceTrending})
	if a != b {
		t.Fatalf("explanation depends on source order: %q vs %q", a, b)
	}
}
