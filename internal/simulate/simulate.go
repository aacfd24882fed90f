// Package simulate emits a synthetic DCF77 minute stream, one frame per
// line, for exercising decoders without a receiver attached.
package simulate

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/giordano/godcf77/pkg/dcf77"
)

// Config controls the generated stream.
type Config struct {
	// Start is the first broadcast minute, RFC3339. Empty means now.
	Start string `yaml:"start"`
	// Count is the number of frames to emit. Zero or negative means one.
	Count int `yaml:"count"`
	// IntervalSeconds paces the output between frames. Zero emits
	// everything immediately; 60 mimics the real transmitter.
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Load reads a yaml config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// StartTime resolves the configured start instant.
func (c Config) StartTime() (time.Time, error) {
	if c.Start == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, c.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start time: %w", err)
	}
	return t, nil
}

// Run writes one encoded frame per simulated minute to w, pacing by
// IntervalSeconds when set. It stops early when ctx is cancelled.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	start, err := cfg.StartTime()
	if err != nil {
		return err
	}
	start = start.Truncate(time.Minute)
	count := cfg.Count
	if count <= 0 {
		count = 1
	}
	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	for i := 0; i < count; i++ {
		frame := dcf77.Encode(start.Add(time.Duration(i) * time.Minute))
		if _, err := fmt.Fprintln(w, frame.BitString()); err != nil {
			return err
		}
		if interval <= 0 || i == count-1 {
			continue
		}
		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
