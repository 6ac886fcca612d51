package entity_test

import (
	"errors"
	"testing"

	"reco-engine/internal/domain/entity"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    entity.ContentType
		wantErr bool
	}{
		{name: "article", input: "article", want: entity.ContentTypeArticle},
		{name: "topic", input: "topic", want: entity.ContentTypeTopic},
		{name: "job", input: "job", want: entity.ContentTypeJob},
		{name: "user", input: "user", want: entity.ContentTypeUser},
		{name: "unknown value", input: "video", wantErr: true},
		{name: "empty value", input: "", wantErr: true},
		{name: "case sensitive", input: "Article", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entity.ParseContentType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseContentType(%q) expected error, got nil", tt.input)
				}
				if !errors.Is(err, entity.ErrInvalidInput) {
					t.Errorf("error should match ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseContentType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseContentType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllContentTypes(t *testing.T) {
	types := entity.AllContentTypes()
	if len(types) != 4 {
		t.Fatalf("expected 4 content types, got %d", len(types))
	}
	for _, ct := range types {
		if !ct.Valid() {
			t.Errorf("AllContentTypes returned invalid type %q", ct)
		}
	}
}

func TestExplicitInteractionsItems(t *testing.T) {
	ex := entity.ExplicitInteractions{
		Bookmarks:       []entity.ItemRef{{Type: entity.ContentTypeArticle, ID: 1}},
		TopicVotes:      []entity.ItemRef{{Type: entity.ContentTypeTopic, ID: 2}},
		ReplyVotes:      []entity.ItemRef{{Type: entity.ContentTypeTopic, ID: 3}},
		Follows:         []int64{7},
		JobApplications: []int64{9},
	}

	items := ex.Items()
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	// Follows and applications must be mapped to their content types.
	if items[3] != (entity.ItemRef{Type: entity.ContentTypeUser, ID: 7}) {
		t.Errorf("follow not mapped to user ref: %+v", items[3])
	}
	if items[4] != (entity.ItemRef{Type: entity.ContentTypeJob, ID: 9}) {
		t.Errorf("application not mapped to job ref: %+v", items[4])
	}
}

func TestExplicitInteractionsItemsEmpty(t *testing.T) {
	var ex entity.ExplicitInteractions
	if got := ex.Items(); len(got) != 0 {
		t.Errorf("expected no items for empty interactions, got %d", len(got))
	}
}
