package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"emotion-canvas/internal/domain"
)

func TestInMemoryAnalysisRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryAnalysisRepository()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}

	for i, e := range []domain.Emotion{domain.EmotionJoy, domain.EmotionJoy, domain.EmotionFear} {
		a := domain.Analysis{
			ID:        string(rune('a' + i)),
			Result:    domain.ClassificationResult{PrimaryEmotion: e},
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result.PrimaryEmotion != domain.EmotionJoy {
		t.Fatalf("unexpected analysis: %+v", got)
	}

	counts, err := repo.CountByEmotion(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[domain.EmotionJoy] != 2 || counts[domain.EmotionFear] != 1 || counts[domain.EmotionCalm] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestInMemoryArtworkRepository_ListByVisitor(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryArtworkRepository()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, domain.Artwork{ID: "old", VisitorID: "v1", CreatedAt: base})
	_ = repo.Create(ctx, domain.Artwork{ID: "new", VisitorID: "v1", CreatedAt: base.Add(time.Hour)})
	_ = repo.Create(ctx, domain.Artwork{ID: "other", VisitorID: "v2", CreatedAt: base})

	list, err := repo.ListByVisitor(ctx, "v1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "new" || list[1].ID != "old" {
		t.Fatalf("expected newest first for v1, got %+v", list)
	}

	limited, _ := repo.ListByVisitor(ctx, "v1", 1)
	if len(limited) != 1 || limited[0].ID != "new" {
		t.Fatalf("expected limit to keep newest, got %+v", limited)
	}

	none, _ := repo.ListByVisitor(ctx, "v3", 10)
	if len(none) != 0 {
		t.Fatalf("expected empty list, got %+v", none)
	}
}
