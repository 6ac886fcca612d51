package entity_test

import (
	"errors"
	"testing"

	"reco-engine/internal/domain/entity"
)

func TestValidateFeedbackValue(t *testing.T) {
	tests := []struct {
		name    string
		value   entity.FeedbackValue
		wantErr bool
	}{
		{name: "like", value: entity.FeedbackLike},
		{name: "dislike", value: entity.FeedbackDislike},
		{name: "dismiss", value: entity.FeedbackDismiss},
		{name: "not_interested", value: entity.FeedbackNotInterested},
		{name: "unknown", value: "love", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateFeedbackValue(tt.value)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.value, err)
			}
			if tt.wantErr && !errors.Is(err, entity.ErrInvalidInput) {
				t.Errorf("error should match ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestFeedbackSuppresses(t *testing.T) {
	tests := []struct {
		value entity.FeedbackValue
		want  bool
	}{
		{entity.FeedbackLike, false},
		{entity.FeedbackDismiss, false},
		{entity.FeedbackDislike, true},
		{entity.FeedbackNotInterested, true},
	}

	for _, tt := range tests {
		fb := entity.Feedback{Value: tt.value}
		if got := fb.Suppresses(); got != tt.want {
			t.Errorf("Suppresses() for %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
