package internals

import (
	"math/rand/v2"
	"sync"

	"github.com/MikuMikuMe/green-travel-planner/model"
)

// emission ranges in g CO2e per km, half open [min, max)
const (
	carEmissionMin = 100.0
	carEmissionMax = 200.0

	bikeEmissionMin = 5.0
	bikeEmissionMax = 10.0

	publicTransportEmissionMin = 20.0
	publicTransportEmissionMax = 50.0
)

// Sampler simulates the emissions lookup a real planner would make
// against an external data service. The random source is injected so
// tests can substitute a deterministic one. *rand.Rand is not safe for
// concurrent use and the server draws from one sampler across request
// goroutines, so every draw goes through the mutex.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// NewDefaultSampler returns a sampler backed by a randomly seeded source.
func NewDefaultSampler() *Sampler {
	return NewSampler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Sample draws a fresh emissions report for the given route. The route
// does not influence the draw, it mirrors the signature an external
// emissions service would need.
func (sampler *Sampler) Sample(route model.Route) model.EmissionsReport {
	return model.EmissionsReport{
		model.ModeCar:             sampler.uniform(carEmissionMin, carEmissionMax),
		model.ModeBike:            sampler.uniform(bikeEmissionMin, bikeEmissionMax),
		model.ModePublicTransport: sampler.uniform(publicTransportEmissionMin, publicTransportEmissionMax),
	}
}

func (sampler *Sampler) uniform(min, max float64) float64 {
	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	return min + sampler.rng.Float64()*(max-min)
}
