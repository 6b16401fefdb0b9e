package service

import (
	"context"
	"math/rand"
	"time"
)

// RandSource abstrae la aleatoriedad para que los tests usen valores fijos.
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

// NewRandSource devuelve una fuente uniforme segura para uso concurrente.
func NewRandSource() RandSource {
	return globalRand{}
}

func (globalRand) IntN(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Sleeper espera d o hasta que ctx se cancele.
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleep es el Sleeper real.
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
