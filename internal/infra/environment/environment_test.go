package environment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/config"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type proberFunc func(ctx context.Context) error

func (f proberFunc) Health(ctx context.Context) error { return f(ctx) }

func TestDetect(t *testing.T) {
	healthy := proberFunc(func(context.Context) error { return nil })
	broken := proberFunc(func(context.Context) error { return errors.New("connection refused") })
	slow := proberFunc(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	tests := []struct {
		name   string
		cfg    config.SalonAPIConfig
		prober Prober
		want   Kind
	}{
		{"no url", config.SalonAPIConfig{}, healthy, KindLocal},
		{"healthy remote", config.SalonAPIConfig{URL: "http://salon", ProbeTimeout: 1}, healthy, KindRemote},
		{"broken remote", config.SalonAPIConfig{URL: "http://salon", ProbeTimeout: 1}, broken, KindLocal},
		{"probe timeout", config.SalonAPIConfig{URL: "http://salon", ProbeTimeout: 1}, slow, KindLocal},
		{"no prober", config.SalonAPIConfig{URL: "http://salon", ProbeTimeout: 1}, nil, KindLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(context.Background(), tt.cfg, tt.prober, nopLogger{}))
		})
	}
}
