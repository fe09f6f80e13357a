package main

import (
	"fmt"
	"os"

	_ "net/http/pprof"

	"github.com/Meesho/BharatMLStack/floatmap/internal/dist"
)

// distSpec names a key distribution and knows how to build a fresh,
// per-trial-seeded sampler for it.
type distSpec struct {
	name       string
	params     string
	newSampler func(seed int64) dist.Sampler
}

// The three benchmark distributions: uniform over [0, 1000], gaussian around
// 500 with stddev 100, and exponential with mean 200. Exponential is the
// skewed one that stresses the mixer.
func uniformSpec() distSpec {
	return distSpec{
		name:       "Uniform",
		params:     dist.NewUniform(0.0, 1000.0, 0).Params(),
		newSampler: func(seed int64) dist.Sampler { return dist.NewUniform(0.0, 1000.0, seed) },
	}
}

func gaussianSpec() distSpec {
	return distSpec{
		name:       "Gaussian",
		params:     dist.NewGaussian(500.0, 100.0, 0).Params(),
		newSampler: func(seed int64) dist.Sampler { return dist.NewGaussian(500.0, 100.0, seed) },
	}
}

func exponentialSpec() distSpec {
	return distSpec{
		name:       "Exponential",
		params:     dist.NewExponential(0.005, 0).Params(),
		newSampler: func(seed int64) dist.Sampler { return dist.NewExponential(0.005, seed) },
	}
}

func specFor(name string) (distSpec, error) {
	switch name {
	case "uniform":
		return uniformSpec(), nil
	case "gaussian":
		return gaussianSpec(), nil
	case "exponential":
		return exponentialSpec(), nil
	default:
		return distSpec{}, fmt.Errorf("unknown distribution %q", name)
	}
}

func main() {
	//pick plan from the environment variable
	plan := os.Getenv("PLAN")
	if plan == "grid" {
		planGrid()
	} else if plan == "build" {
		planBuild()
	} else if plan == "mixed" {
		planMixed()
	} else {
		panic("invalid plan")
	}
}
