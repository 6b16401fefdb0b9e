package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emotion-canvas/internal/domain"
)

const (
	// DefaultGenerationDelay simula la latencia de un generador remoto.
	DefaultGenerationDelay = 1500 * time.Millisecond
	maxSeed                = 1_000_000
)

var ErrGenerationFailed = errors.New("artwork generation failed")

// FailureInjector permite simular fallas de generacion desde afuera. Un
// error no nil se devuelve envuelto en ErrGenerationFailed.
type FailureInjector func(emotion domain.Emotion, style domain.ArtStyle) error

// RandomFailure falla con probabilidad rate. Con rate <= 0 devuelve nil.
func RandomFailure(rate float64, rnd RandSource) FailureInjector {
	if rate <= 0 {
		return nil
	}
	if rnd == nil {
		rnd = NewRandSource()
	}
	return func(domain.Emotion, domain.ArtStyle) error {
		if rnd.Float64() < rate {
			return errors.New("simulated generator outage")
		}
		return nil
	}
}

// ArtGenerator elige una imagen de ejemplo para la emocion y la entrega
// despues de un retardo artificial. No hace I/O.
type ArtGenerator struct {
	rand    RandSource
	sleep   Sleeper
	delay   time.Duration
	failure FailureInjector
}

type ArtGeneratorOption func(*ArtGenerator)

func WithGenerationDelay(d time.Duration) ArtGeneratorOption {
	return func(g *ArtGenerator) { g.delay = d }
}

func WithSleeper(s Sleeper) ArtGeneratorOption {
	return func(g *ArtGenerator) {
		if s != nil {
			g.sleep = s
		}
	}
}

func WithFailureInjector(f FailureInjector) ArtGeneratorOption {
	return func(g *ArtGenerator) { g.failure = f }
}

func NewArtGenerator(rnd RandSource, opts ...ArtGeneratorOption) *ArtGenerator {
	if rnd == nil {
		rnd = NewRandSource()
	}
	g := &ArtGenerator{
		rand:  rnd,
		sleep: ContextSleep,
		delay: DefaultGenerationDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate devuelve una obra para emotion/style. Si seed no es nil se usa tal
// cual; si no, se sortea en [0, 1000000).
func (g *ArtGenerator) Generate(ctx context.Context, emotion domain.Emotion, style domain.ArtStyle, seed *int) (domain.ArtworkResult, error) {
	assets := PlaceholderAssets(emotion)
	asset := assets[g.rand.IntN(len(assets))]

	var generatedSeed int
	if seed != nil {
		generatedSeed = *seed
	} else {
		generatedSeed = g.rand.IntN(maxSeed)
	}

	if err := g.sleep(ctx, g.delay); err != nil {
		return domain.ArtworkResult{}, fmt.Errorf("wait for generation: %w", err)
	}

	if g.failure != nil {
		if err := g.failure(emotion, style); err != nil {
			return domain.ArtworkResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
	}

	return domain.ArtworkResult{
		AssetURL: asset,
		Emotion:  emotion,
		Style:    style,
		Seed:     generatedSeed,
	}, nil
}
