package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emotion-canvas/internal/domain"
)

type AnalysisRepository interface {
	Create(ctx context.Context, analysis domain.Analysis) error
	GetByID(ctx context.Context, id string) (domain.Analysis, error)
	CountByEmotion(ctx context.Context) (map[domain.Emotion]int, error)
}

type PgAnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnalysisRepository(pool *pgxpool.Pool) *PgAnalysisRepository {
	return &PgAnalysisRepository{pool: pool}
}

func (r *PgAnalysisRepository) Create(ctx context.Context, analysis domain.Analysis) error {
	const query = `
		INSERT INTO analyses (id, visitor_id, text, primary_emotion, emotion_scores, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	scores, err := json.Marshal(analysis.Result.EmotionScores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	var visitorID interface{}
	if analysis.VisitorID != "" {
		visitorID = analysis.VisitorID
	}

	_, err = r.pool.Exec(ctx, query,
		analysis.ID,
		visitorID,
		analysis.Text,
		string(analysis.Result.PrimaryEmotion),
		scores,
		analysis.Result.Confidence,
		analysis.CreatedAt,
	)
	return err
}

func (r *PgAnalysisRepository) GetByID(ctx context.Context, id string) (domain.Analysis, error) {
	const query = `
		SELECT id, COALESCE(visitor_id, ''), text, primary_emotion, emotion_scores, confidence, created_at
		FROM analyses
		WHERE id = $1
	`
	var (
		a       domain.Analysis
		primary string
		scores  []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.VisitorID,
		&a.Text,
		&primary,
		&scores,
		&a.Result.Confidence,
		&a.CreatedAt,
	)
	if err != nil {
		return domain.Analysis{}, err
	}
	a.Result.PrimaryEmotion = domain.Emotion(primary)
	if err := json.Unmarshal(scores, &a.Result.EmotionScores); err != nil {
		return domain.Analysis{}, fmt.Errorf("unmarshal scores: %w", err)
	}
	return a, nil
}

func (r *PgAnalysisRepository) CountByEmotion(ctx context.Context) (map[domain.Emotion]int, error) {
	const query = `
		SELECT primary_emotion, COUNT(*)
		FROM analyses
		GROUP BY primary_emotion
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Emotion]int)
	for rows.Next() {
		var (
			emotion string
			n       int
		)
		if err := rows.Scan(&emotion, &n); err != nil {
			return nil, err
		}
		counts[domain.Emotion(emotion)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// InMemoryAnalysisRepository se usa cuando no hay DATABASE_URL y en tests.
type InMemoryAnalysisRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Analysis
}

func NewInMemoryAnalysisRepository() *InMemoryAnalysisRepository {
	return &InMemoryAnalysisRepository{items: make(map[string]domain.Analysis)}
}

func (r *InMemoryAnalysisRepository) Create(_ context.Context, analysis domain.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[analysis.ID] = analysis
	return nil
}

func (r *InMemoryAnalysisRepository) GetByID(_ context.Context, id string) (domain.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return domain.Analysis{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *InMemoryAnalysisRepository) CountByEmotion(_ context.Context) (map[domain.Emotion]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.Emotion]int)
	for _, a := range r.items {
		counts[a.Result.PrimaryEmotion]++
	}
	return counts, nil
}
