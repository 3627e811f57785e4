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

// MACFactory3 is the 3D counterpart of MACFactory2.
type MACFactory3[S vecd.Real] func(r vecd.Vec3[S]) mac.Predicate3[S]

// OpeningAngleFactory3 builds an opening-angle MACFactory3 for θ.
func OpeningAngleFactory3[S vecd.Real](theta S) MACFactory3[S] {
	return func(r vecd.Vec3[S]) mac.Predicate3[S] { return mac.NewOpeningAngle3(r, theta) }
}

// MinDistanceFactory3 builds a min-distance MACFactory3 for θ.
func MinDistanceFactory3[S vecd.Real](theta S) MACFactory3[S] {
	return func(r vecd.Vec3[S]) mac.Predicate3[S] { return mac.NewMinDistance3(r, theta) }
}

// Options3 is the 3D counterpart of Options2.
type Options3[S vecd.Real] struct {
	Epsilon    S
	Order      moment.Order
	NewMAC     MACFactory3[S]
	ND         S
	QtoMCutoff S
	MaxDepth   int
}

// Evaluate3 is the 3D counterpart of Evaluate2.
func Evaluate3[S vecd.Real](particles []particle.Particle3[S], opts Options3[S]) ([]vecd.Vec3[S], IterationStats, error) {
	n := len(particles)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	buildStart := time.Now()
	root, pool, err := tree.Build3(particles, idx, tree.BuildOptions3{Order: opts.Order, MaxDepth: opts.MaxDepth})
	if err != nil {
		return nil, IterationStats{}, err
	}
	treeDur := time.Since(buildStart)

	out := make([]vecd.Vec3[S], n)
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
					out[i] = vecd.Zero3[S]()
					continue
				}
				ev := field.NewEvaluator3(p.R, opts.Epsilon, opts.Order, opts.NewMAC(p.R), particles)
				e := ev.Evaluate(root)
				out[i] = e.Scale(p.QtoM / (3 * opts.ND))
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
