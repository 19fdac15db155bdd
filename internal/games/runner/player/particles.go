package player

// Particle is a short-lived cosmetic puff left behind by a mid-air jump.
// Particles never affect physics or collision.
type Particle struct {
	X, Y int
	Life int // Ticks left to display, counting this one
}

// burst offsets relative to the body: dx, dy, lifetime
var burst = [...][3]int{
	{0, 1, 4},
	{-1, 1, 3},
	{1, 1, 3},
	{0, 2, 2},
}

func (b *Body) spawnBurst() {
	x, y := b.X(), b.Row()
	for _, p := range burst {
		b.particles = append(b.particles, Particle{X: x + p[0], Y: y + p[1], Life: p[2]})
	}
	b.fresh += len(burst)
}

// ageParticles drops particles on their last tick and decrements the rest.
// Particles spawned since the previous update are left untouched, so a
// particle created with lifetime L is visible for exactly L ticks.
func (b *Body) ageParticles() {
	firstFresh := len(b.particles) - b.fresh
	b.fresh = 0
	alive := b.particles[:0]
	for i, p := range b.particles {
		if i >= firstFresh {
			alive = append(alive, p)
			continue
		}
		if p.Life > 1 {
			p.Life--
			alive = append(alive, p)
		}
	}
	b.particles = alive
}

// Particles returns a copy of the live particles.
func (b *Body) Particles() []Particle {
	out := make([]Particle, len(b.particles))
	copy(out, b.particles)
	return out
}
