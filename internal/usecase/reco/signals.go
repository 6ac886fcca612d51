package reco

import (
	"context"
	"fmt"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"

	"golang.org/x/sync/errgroup"
)

// signalsReader builds the per-computation InteractionSignals snapshot.
// All three reads are required inputs: any failure aborts the whole
// recommendation computation, because downstream scoring assumes
// complete-for-window data.
type signalsReader struct {
	repo repository.InteractionRepository
	cfg  Config
}

// Read fetches explicit interactions, implicit views, and the declared
// profile concurrently and assembles the immutable snapshot. Missing
// data (no bookmarks, no views) is normal and yields empty sets.
func (r *signalsReader) Read(ctx context.Context, userID int64) (*entity.InteractionSignals, error) {
	var (
		explicit *entity.ExplicitInteractions
		views    []entity.ContentView
		profile  *entity.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		explicit, err = r.repo.GetExplicitInteractions(gctx, userID, r.cfg.InteractionLimit)
		if err != nil {
			return fmt.Errorf("explicit interactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		views, err = r.repo.GetImplicitInteractions(gctx, userID, r.cfg.ImplicitWindowDays)
		if err != nil {
			return fmt.Errorf("implicit interactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profile, err = r.repo.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read signals for user %d: %w", userID, err)
	}

	signals := &entity.InteractionSignals{UserID: userID, Views: views}
	if explicit != nil {
		signals.Explicit = *explicit
	}
	if profile != nil {
		signals.Profile = *profile
	}
	return signals, nil
}
