package dist

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler draws synthetic float64 keys. Each sampler owns its own seeded RNG
// so runs are reproducible and two samplers never interleave streams.
type Sampler interface {
	Next() float64
	// Params renders the distribution parameters for CSV rows.
	Params() string
	fmt.Stringer
}

// Uniform samples over [Min, Max].
type Uniform struct {
	rng *rand.Rand
	Min float64
	Max float64
}

func NewUniform(min, max float64, seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed)), Min: min, Max: max}
}

func (u *Uniform) Next() float64 {
	return u.Min + (u.Max-u.Min)*u.rng.Float64()
}

func (u *Uniform) Params() string {
	return fmt.Sprintf("min=%.1f max=%.1f", u.Min, u.Max)
}

func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform[%.1f, %.1f]", u.Min, u.Max)
}

// Gaussian samples a normal distribution with the given mean and stddev.
// Unbounded support.
type Gaussian struct {
	rng    *rand.Rand
	Mean   float64
	StdDev float64
}

func NewGaussian(mean, stdDev float64, seed int64) *Gaussian {
	return &Gaussian{rng: rand.New(rand.NewSource(seed)), Mean: mean, StdDev: stdDev}
}

func (g *Gaussian) Next() float64 {
	return g.Mean + g.StdDev*g.rng.NormFloat64()
}

func (g *Gaussian) Params() string {
	return fmt.Sprintf("mean=%.1f stddev=%.1f", g.Mean, g.StdDev)
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian(mean=%.1f, stddev=%.1f)", g.Mean, g.StdDev)
}

// Exponential samples with rate Lambda via inverse CDF. Mean = 1/Lambda.
// Heavily skewed toward zero, which is what stresses the table's mixer.
type Exponential struct {
	rng    *rand.Rand
	Lambda float64
}

func NewExponential(lambda float64, seed int64) *Exponential {
	return &Exponential{rng: rand.New(rand.NewSource(seed)), Lambda: lambda}
}

func (e *Exponential) Next() float64 {
	return -math.Log(1.0-e.rng.Float64()) / e.Lambda
}

func (e *Exponential) Params() string {
	return fmt.Sprintf("lambda=%.4f", e.Lambda)
}

func (e *Exponential) String() string {
	return fmt.Sprintf("Exponential(lambda=%.4f, mean=%.1f)", e.Lambda, 1.0/e.Lambda)
}
