package reco

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

func signalsWithBookmarks(userID int64, n int) *entity.InteractionSignals {
	refs := make([]entity.ItemRef, 0, n)
	for i := 0; i < n; i++ {
		refs = append(refs, entity.ItemRef{Type: entity.ContentTypeArticle, ID: int64(i + 1)})
	}
	return &entity.InteractionSignals{
		UserID:   userID,
		Explicit: entity.ExplicitInteractions{Bookmarks: refs},
	}
}

func TestNeighborFinder_SimilarityIsOverlapOverSubjectItems(t *testing.T) {
	repo := &stubRepo{
		overlaps: []repository.UserOverlap{
			{UserID: 2, Overlap: 8},
			{UserID: 3, Overlap: 4},
			{UserID: 4, Overlap: 2}, // below min overlap
		},
	}
	f := &neighborFinder{repo: repo, cfg: DefaultConfig()}

	got, err := f.Find(context.Background(), signalsWithBookmarks(1, 10))
	if err != nil {
		t.Fatalf("Find err=%v", err)
	}
	want := []entity.Neighbor{
		{UserID: 2, Similarity: 0.8},
		{UserID: 3, Similarity: 0.4},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighborFinder_ColdStart(t *testing.T) {
	f := &neighborFinder{repo: &stubRepo{}, cfg: DefaultConfig()}
	got, err := f.Find(context.Background(), &entity.InteractionSignals{UserID: 1})
	if err != nil || got != nil {
		t.Fatalf("want nil, nil for cold start; got %v, %v", got, err)
	}
}

func TestNeighborFinder_ClampsSimilarity(t *testing.T) {
	// A neighbor can overlap on more items than the subject's explicit
	// count when the store counts across kinds; similarity stays <= 1.
	repo := &stubRepo{
		overlaps: []repository.UserOverlap{{UserID: 2, Overlap: 12}},
	}
	f := &neighborFinder{repo: repo, cfg: DefaultConfig()}

	got, err := f.Find(context.Background(), signalsWithBookmarks(1, 10))
	if err != nil {
		t.Fatalf("Find err=%v", err)
	}
	if len(got) != 1 || got[0].Similarity != 1 {
		t.Fatalf("want similarity clamped to 1, got %+v", got)
	}
}

func TestNeighborFinder_ExcludesSelf(t *testing.T) {
	repo := &stubRepo{
		overlaps: []repository.UserOverlap{
			{UserID: 1, Overlap: 10},
			{UserID: 2, Overlap: 5},
		},
	}
	f := &neighborFinder{repo: repo, cfg: DefaultConfig()}

	got, err := f.Find(context.Background(), signalsWithBookmarks(1, 10))
	if err != nil {
		t.Fatalf("Find err=%v", err)
	}
	for _, n := range got {
		if n.UserID == 1 {
			t.Fatal("subject returned as their own neighbor")
		}
	}
}

func TestNeighborFinder_TruncatesToLimit(t *testing.T) {
	overlaps := make([]repository.UserOverlap, 0, 60)
	for i := 0; i < 60; i++ {
		overlaps = append(overlaps, repository.UserOverlap{UserID: int64(i + 2), Overlap: 60 - i})
	}
	cfg := DefaultConfig()
	f := &neighborFinder{repo: &stubRepo{overlaps: overlaps}, cfg: cfg}

	got, err := f.Find(context.Background(), signalsWithBookmarks(1, 100))
	if err != nil {
		t.Fatalf("Find err=%v", err)
	}
	if len(got) != cfg.NeighborLimit {
		t.Fatalf("want %d neighbors, got %d", cfg.NeighborLimit, len(got))
	}
}
