package level

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Star is a single background dot.
type Star struct {
	X, Y int
}

// Cloud is a horizontal run of cloud glyphs starting at X.
type Cloud struct {
	X, Y, Width int
}

// Background is a read-only snapshot of the parallax layer. It has no
// effect on collision or generation.
type Background struct {
	Stars  []Star
	Clouds []Cloud
}

type background struct {
	cfg    config.BackgroundConfig
	width  int
	stars  []Star
	clouds []Cloud
}

// newBackground lays out stars and clouds from the fixed background seed so
// the sky is identical on every run and independent of obstacle randomness.
func newBackground(cfg config.BackgroundConfig, width, height int) background {
	rng := rand.New(rand.NewSource(cfg.Seed))
	bg := background{cfg: cfg, width: width}

	bg.stars = make([]Star, cfg.Stars)
	for i := range bg.stars {
		bg.stars[i] = Star{
			X: rng.Intn(width),
			Y: 1 + rng.Intn(max(height/3, 1)),
		}
	}

	bg.clouds = make([]Cloud, cfg.Clouds)
	for i := range bg.clouds {
		bg.clouds[i] = Cloud{
			X:     rng.Intn(width),
			Y:     1 + rng.Intn(max(height/2, 1)),
			Width: 3 + rng.Intn(4),
		}
	}
	return bg
}

// scroll moves each layer one column left when its period divides the
// scroll count. Stars wrap as soon as they leave the grid; clouds wrap once
// fully off screen.
func (b *background) scroll(count int) {
	if count%b.cfg.StarPeriod == 0 {
		for i := range b.stars {
			b.stars[i].X--
			if b.stars[i].X < 0 {
				b.stars[i].X = b.width - 1
			}
		}
	}
	if count%b.cfg.CloudPeriod == 0 {
		for i := range b.clouds {
			b.clouds[i].X--
			if b.clouds[i].X < -b.clouds[i].Width {
				b.clouds[i].X = b.width - 1
			}
		}
	}
}

func (b *background) snapshot() Background {
	out := Background{
		Stars:  make([]Star, len(b.stars)),
		Clouds: make([]Cloud, len(b.clouds)),
	}
	copy(out.Stars, b.stars)
	copy(out.Clouds, b.clouds)
	return out
}
