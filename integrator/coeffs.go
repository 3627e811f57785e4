package integrator

import "github.com/FreddieWitherden/teatree/vecd"

// gammaOrder2 is the order-2 (Störmer-Verlet) coefficient, spec.md §4.K.
func gammaOrder2[S vecd.Real]() []S { return []S{1} }

// gammaOrder4 is the order-4 composition's coefficients, spec.md §4.K.
func gammaOrder4[S vecd.Real]() []S {
	return []S{1.3512071919596576340476878, -1.7024143839193152680953756}
}

// gammaOrder6 is the order-6 composition's coefficients, spec.md §4.K.
func gammaOrder6[S vecd.Real]() []S {
	return []S{
		0.78451361047755726381949763,
		0.23557321335935813368479318,
		-1.17767998417887100694641568,
		1.31518632068391121888424973,
	}
}

func gammaForOrder[S vecd.Real](order int) ([]S, error) {
	switch order {
	case 2:
		return gammaOrder2[S](), nil
	case 4:
		return gammaOrder4[S](), nil
	case 6:
		return gammaOrder6[S](), nil
	default:
		return nil, &UnsupportedOrderError{Order: order}
	}
}

// expandSymmetric mirrors gamma into the full symmetric coefficient vector
// (γ1,...,γ_{k-1},γ_k,γ_{k-1},...,γ1) of length 2*len(gamma)-1, per
// spec.md §4.K and src/pusher/comp/base.hpp's init_coeffs.
func expandSymmetric[S vecd.Real](gamma []S) []S {
	n := len(gamma)
	c := make([]S, 2*n-1)
	copy(c, gamma)
	for i := 0; i < n; i++ {
		c[2*n-2-i] = gamma[i]
	}
	return c
}

// hAndHPrime computes the per-sub-step position/velocity increments: hg[i]
// = c[i]*dt, and hgp the adjacent means with the first/last entries halved
// (spec.md §4.K).
func hAndHPrime[S vecd.Real](gamma []S, dt S) (hg, hgp []S) {
	c := expandSymmetric(gamma)
	n := len(c)

	hg = make([]S, n)
	for i, ci := range c {
		hg[i] = ci * dt
	}

	hgp = make([]S, n+1)
	hgp[0] = 0.5 * hg[0]
	for i := 1; i < n; i++ {
		hgp[i] = 0.5 * (hg[i] + hg[i-1])
	}
	hgp[n] = 0.5 * hg[n-1]

	return hg, hgp
}
