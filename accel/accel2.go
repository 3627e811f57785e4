package accel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/FreddieWitherden/teatree/field"
	"github.com/FreddieWitherden/teatree/mac"
	"github.com/FreddieWitherden/teatree/moment"
	"github.com/FreddieWitherden/teatree/particle"
	"github.com/FreddieWitherden/teatree/tree"
	"github.com/FreddieWitherden/teatree/vecd"
)

// MACFactory2 builds a mac.Predicate2 for a given target position; it lets
// Evaluate2 stay agnostic of which MAC variant (opening-angle vs
// min-distance) the caller has selected for this simulation type.
type MACFactory2[S vecd.Real] func(r vecd.Vec2[S]) mac.Predicate2[S]

// OpeningAngleFactory2 builds an opening-angle MACFactory2 for the given θ.
func OpeningAngleFactory2[S vecd.Real](theta S) MACFactory2[S] {
	return func(r vecd.Vec2[S]) mac.Predicate2[S] { return mac.NewOpeningAngle2(r, theta) }
}

// MinDistanceFactory2 builds a min-distance MACFactory2 for the given θ.
func MinDistanceFactory2[S vecd.Real](theta S) MACFactory2[S] {
	return func(r vecd.Vec2[S]) mac.Predicate2[S] { return mac.NewMinDistance2(r, theta) }
}

// Options2 configures one 2D acceleration pass.
type Options2[S vecd.Real] struct {
	Epsilon    S
	Order      moment.Order
	NewMAC     MACFactory2[S]
	ND         S // Debye-sphere population, N_D
	QtoMCutoff S
	MaxDepth   int
}

// Evaluate2 builds a tree over particles and computes the acceleration of
// every particle in parallel (spec.md §4.J). Particles with |qtom| below
// opts.QtoMCutoff are immobile and receive a zero acceleration.
func Evaluate2[S vecd.Real](particles []particle.Particle2[S], opts Options2[S]) ([]vecd.Vec2[S], IterationStats, error) {
	n := len(particles)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	buildStart := time.Now()
	root, pool, err := tree.Build2(particles, idx, tree.BuildOptions2{Order: opts.Order, MaxDepth: opts.MaxDepth})
	if err != nil {
		return nil, IterationStats{}, err
	}
	treeDur := time.Since(buildStart)

	out := make([]vecd.Vec2[S], n)
	var cursor int64 = -1
	var leaves, branches int64

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	evalStart := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1))
				if i >= n {
					return
				}
				p := particles[i]
				if absS(p.QtoM) < opts.QtoMCutoff {
					out[i] = vecd.Zero2[S]()
					continue
				}
				ev := field.NewEvaluator2(p.R, opts.Epsilon, opts.Order, opts.NewMAC(p.R), particles)
				e := ev.Evaluate(root)
				out[i] = e.Scale(p.QtoM / (2 * opts.ND))
				atomic.AddInt64(&leaves, int64(ev.Leaves))
				atomic.AddInt64(&branches, int64(ev.Branches))
			}
		}()
	}
	wg.Wait()
	evalDur := time.Since(evalStart)

	runtime.KeepAlive(pool)
	return out, IterationStats{
		TreeBuild:     treeDur,
		Evaluation:    evalDur,
		LeavesVisited: leaves,
		BranchVisited: branches,
	}, nil
}

func absS[S vecd.Real](v S) S {
	if v < 0 {
		return -v
	}
	return v
}
