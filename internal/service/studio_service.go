package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"emotion-canvas/internal/domain"
	"emotion-canvas/internal/repository"
)

const (
	DefaultMinInputLength = 10
	defaultGalleryLimit   = 20
	maxGalleryLimit       = 100
)

var (
	ErrInputTooShort    = errors.New("please enter a longer description of your feelings")
	ErrUnknownEmotion   = errors.New("unknown emotion")
	ErrUnknownStyle     = errors.New("unknown art style")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrRateLimited      = errors.New("rate limited")
)

// StudioService coordina el flujo texto -> emocion -> obra y guarda el historial.
type StudioService struct {
	logger         *zap.Logger
	classifier     EmotionClassifier
	prompts        ArtPromptBuilder
	generator      *ArtGenerator
	analyses       repository.AnalysisRepository
	artworks       repository.ArtworkRepository
	limiter        RateLimiter
	minInputLength int
}

func NewStudioService(
	logger *zap.Logger,
	generator *ArtGenerator,
	prompts ArtPromptBuilder,
	analyses repository.AnalysisRepository,
	artworks repository.ArtworkRepository,
	limiter RateLimiter,
	minInputLength int,
) *StudioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if generator == nil {
		generator = NewArtGenerator(nil)
	}
	if prompts.rand == nil {
		prompts = NewArtPromptBuilder(nil)
	}
	if minInputLength < 0 {
		minInputLength = DefaultMinInputLength
	}
	return &StudioService{
		logger:         logger,
		classifier:     DefaultEmotionClassifier,
		prompts:        prompts,
		generator:      generator,
		analyses:       analyses,
		artworks:       artworks,
		limiter:        limiter,
		minInputLength: minInputLength,
	}
}

// AnalysisOutput es lo que ve el cliente tras analizar un texto.
type AnalysisOutput struct {
	Analysis     domain.Analysis       `json:"analysis"`
	Profile      domain.EmotionProfile `json:"profile"`
	MatchedWords []string              `json:"matched_words"`
}

// Analyze valida el largo minimo, clasifica y guarda el analisis.
func (s *StudioService) Analyze(ctx context.Context, visitorID, text string) (AnalysisOutput, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < s.minInputLength {
		return AnalysisOutput{}, ErrInputTooShort
	}

	result := s.classifier.Classify(text)
	analysis := domain.Analysis{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		Text:      text,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if s.analyses != nil {
		if err := s.analyses.Create(ctx, analysis); err != nil {
			s.logger.Warn("analysis save failed", zap.Error(err), zap.String("visitor_id", visitorID))
			return AnalysisOutput{}, fmt.Errorf("save analysis: %w", err)
		}
	}

	s.logger.Info("analysis complete",
		zap.String("analysis_id", analysis.ID),
		zap.String("primary_emotion", string(result.PrimaryEmotion)),
		zap.Float64("confidence", result.Confidence),
	)

	return AnalysisOutput{
		Analysis:     analysis,
		Profile:      EmotionProfileFor(result.PrimaryEmotion),
		MatchedWords: s.classifier.MatchedWords(text),
	}, nil
}

// GenerateInput identifica la emocion por AnalysisID o por etiqueta directa.
type GenerateInput struct {
	VisitorID  string
	ClientKey  string
	AnalysisID string
	Emotion    string
	StyleID    string
	Seed       *int
}

// Generate resuelve emocion y estilo, aplica el limite de tasa y espera al generador.
func (s *StudioService) Generate(ctx context.Context, in GenerateInput) (domain.Artwork, error) {
	emotion, err := s.resolveEmotion(ctx, in)
	if err != nil {
		return domain.Artwork{}, err
	}

	style := DefaultArtStyle()
	if strings.TrimSpace(in.StyleID) != "" {
		found, ok := FindArtStyle(in.StyleID)
		if !ok {
			return domain.Artwork{}, ErrUnknownStyle
		}
		style = found
	}

	if s.limiter != nil {
		key := in.VisitorID
		if key == "" {
			key = in.ClientKey
		}
		if !s.limiter.Allow(key) {
			return domain.Artwork{}, ErrRateLimited
		}
	}

	result, err := s.generator.Generate(ctx, emotion, style, in.Seed)
	if err != nil {
		s.logger.Warn("artwork generation failed", zap.Error(err), zap.String("emotion", string(emotion)))
		return domain.Artwork{}, err
	}

	artwork := domain.Artwork{
		ID:         uuid.NewString(),
		VisitorID:  in.VisitorID,
		AnalysisID: in.AnalysisID,
		Result:     result,
		Prompt:     s.prompts.DescribeArtwork(emotion, style),
		CreatedAt:  time.Now().UTC(),
	}

	if s.artworks != nil {
		if err := s.artworks.Create(ctx, artwork); err != nil {
			s.logger.Warn("artwork save failed", zap.Error(err), zap.String("artwork_id", artwork.ID))
			return domain.Artwork{}, fmt.Errorf("save artwork: %w", err)
		}
	}

	return artwork, nil
}

func (s *StudioService) resolveEmotion(ctx context.Context, in GenerateInput) (domain.Emotion, error) {
	if strings.TrimSpace(in.AnalysisID) == "" {
		emotion, ok := domain.ParseEmotion(in.Emotion)
		if !ok {
			return "", ErrUnknownEmotion
		}
		return emotion, nil
	}
	if s.analyses == nil {
		return "", ErrAnalysisNotFound
	}
	analysis, err := s.analyses.GetByID(ctx, in.AnalysisID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrAnalysisNotFound
		}
		return "", fmt.Errorf("get analysis %s: %w", in.AnalysisID, err)
	}
	// Un visitante no puede reutilizar el analisis de otro.
	if analysis.VisitorID != "" && analysis.VisitorID != in.VisitorID {
		return "", ErrAnalysisNotFound
	}
	return analysis.Result.PrimaryEmotion, nil
}

// Gallery es la galeria del visitante; Featured indica que se devolvieron
// las obras de ejemplo porque no hay propias.
type Gallery struct {
	Artworks []domain.Artwork `json:"artworks"`
	Featured bool             `json:"featured"`
}

func (s *StudioService) Gallery(ctx context.Context, visitorID string, limit int) (Gallery, error) {
	if limit <= 0 {
		limit = defaultGalleryLimit
	}
	if limit > maxGalleryLimit {
		limit = maxGalleryLimit
	}

	if visitorID != "" && s.artworks != nil {
		own, err := s.artworks.ListByVisitor(ctx, visitorID, limit)
		if err != nil {
			return Gallery{}, fmt.Errorf("list artworks: %w", err)
		}
		if len(own) > 0 {
			return Gallery{Artworks: own}, nil
		}
	}

	featured := FeaturedArtworks()
	out := make([]domain.Artwork, 0, len(featured))
	for i, r := range featured {
		out = append(out, domain.Artwork{
			ID:     fmt.Sprintf("featured-%d", i+1),
			Result: r,
			Prompt: s.prompts.DescribeArtwork(r.Emotion, r.Style),
		})
	}
	return Gallery{Artworks: out, Featured: true}, nil
}
