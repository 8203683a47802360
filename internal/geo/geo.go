package geo

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
)

// Position is a fix in decimal degrees
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters, 0 when unknown
}

// Coordinates renders the position as "lat, lon" with six decimals
func (p Position) Coordinates() string {
	return fmt.Sprintf("%.6f, %.6f", p.Latitude, p.Longitude)
}

// Options control one location request
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
}

// Locator produces the device position
type Locator interface {
	Locate(ctx context.Context, opts Options) (Position, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(ctx context.Context, opts Options) (Position, error)

func (f LocatorFunc) Locate(ctx context.Context, opts Options) (Position, error) {
	return f(ctx, opts)
}

// StaticLocator always reports a configured position
type StaticLocator struct {
	Position Position
}

func (s StaticLocator) Locate(ctx context.Context, _ Options) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return s.Position, nil
}

// NoLocator is used when no position source is configured
type NoLocator struct{}

func (NoLocator) Locate(context.Context, Options) (Position, error) {
	return Position{}, ErrPermissionDenied
}

// Retryable reports whether a lower-accuracy attempt may still succeed
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrPositionUnavailable) || errors.Is(err, context.DeadlineExceeded)
}
