package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"reco-engine/internal/domain/entity"
	pg "reco-engine/internal/infra/adapter/persistence/postgres"
)

func TestFeedbackRepo_GetFeedback(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	updated := time.Date(2025, 7, 19, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM feedback").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "item_type", "item_id", "feedback", "updated_at"},
		).
			AddRow(int64(7), "article", int64(5), "dislike", updated).
			AddRow(int64(7), "job", int64(9), "like", updated))

	repo := pg.NewFeedbackRepo(db)
	got, err := repo.GetFeedback(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetFeedback err=%v", err)
	}

	want := []*entity.Feedback{
		{UserID: 7, ItemType: entity.ContentTypeArticle, ItemID: 5, Value: entity.FeedbackDislike, UpdatedAt: updated},
		{UserID: 7, ItemType: entity.ContentTypeJob, ItemID: 9, Value: entity.FeedbackLike, UpdatedAt: updated},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFeedbackRepo_GetFeedback_UnknownItemType(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM feedback").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "item_type", "item_id", "feedback", "updated_at"},
		).AddRow(int64(7), "video", int64(5), "like", time.Now()))

	repo := pg.NewFeedbackRepo(db)
	_, err := repo.GetFeedback(context.Background(), 7)
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for unknown item type, got %v", err)
	}
}

func TestFeedbackRepo_Upsert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	updated := time.Date(2025, 7, 19, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO feedback")).
		WithArgs(int64(7), "topic", int64(3), "not_interested", updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewFeedbackRepo(db)
	err := repo.Upsert(context.Background(), &entity.Feedback{
		UserID: 7, ItemType: entity.ContentTypeTopic, ItemID: 3,
		Value: entity.FeedbackNotInterested, UpdatedAt: updated,
	})
	if err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFeedbackRepo_Upsert_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO feedback").WillReturnError(errors.New("boom"))

	repo := pg.NewFeedbackRepo(db)
	err := repo.Upsert(context.Background(), &entity.Feedback{
		UserID: 7, ItemType: entity.ContentTypeTopic, ItemID: 3,
		Value: entity.FeedbackLike, UpdatedAt: time.Now(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
