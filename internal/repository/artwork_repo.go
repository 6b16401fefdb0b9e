package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"emotion-canvas/internal/domain"
)

type ArtworkRepository interface {
	Create(ctx context.Context, artwork domain.Artwork) error
	ListByVisitor(ctx context.Context, visitorID string, limit int) ([]domain.Artwork, error)
}

type PgArtworkRepository struct {
	pool *pgxpool.Pool
}

func NewPgArtworkRepository(pool *pgxpool.Pool) *PgArtworkRepository {
	return &PgArtworkRepository{pool: pool}
}

func (r *PgArtworkRepository) Create(ctx context.Context, artwork domain.Artwork) error {
	const query = `
		INSERT INTO artworks (id, visitor_id, analysis_id, image_url, emotion, style_id, style_name, style_description, seed, prompt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var visitorID, analysisID interface{}
	if artwork.VisitorID != "" {
		visitorID = artwork.VisitorID
	}
	if artwork.AnalysisID != "" {
		analysisID = artwork.AnalysisID
	}

	_, err := r.pool.Exec(ctx, query,
		artwork.ID,
		visitorID,
		analysisID,
		artwork.Result.AssetURL,
		string(artwork.Result.Emotion),
		artwork.Result.Style.ID,
		artwork.Result.Style.Name,
		artwork.Result.Style.Description,
		artwork.Result.Seed,
		artwork.Prompt,
		artwork.CreatedAt,
	)
	return err
}

func (r *PgArtworkRepository) ListByVisitor(ctx context.Context, visitorID string, limit int) ([]domain.Artwork, error) {
	const query = `
		SELECT id, COALESCE(visitor_id, ''), COALESCE(analysis_id, ''), image_url, emotion,
			style_id, style_name, style_description, seed, prompt, created_at
		FROM artworks
		WHERE visitor_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, visitorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artworks []domain.Artwork
	for rows.Next() {
		var (
			a       domain.Artwork
			emotion string
		)
		if err := rows.Scan(
			&a.ID,
			&a.VisitorID,
			&a.AnalysisID,
			&a.Result.AssetURL,
			&emotion,
			&a.Result.Style.ID,
			&a.Result.Style.Name,
			&a.Result.Style.Description,
			&a.Result.Seed,
			&a.Prompt,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Result.Emotion = domain.Emotion(emotion)
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artworks, nil
}

type InMemoryArtworkRepository struct {
	mu    sync.RWMutex
	items []domain.Artwork
}

func NewInMemoryArtworkRepository() *InMemoryArtworkRepository {
	return &InMemoryArtworkRepository{}
}

func (r *InMemoryArtworkRepository) Create(_ context.Context, artwork domain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, artwork)
	return nil
}

func (r *InMemoryArtworkRepository) ListByVisitor(_ context.Context, visitorID string, limit int) ([]domain.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Artwork
	for _, a := range r.items {
		if a.VisitorID == visitorID {
			out = append(out, a)
		}
	}
	// Mas recientes primero, igual que la consulta SQL.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
