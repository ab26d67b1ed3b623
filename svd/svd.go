// SPDX-License-Identifier: MIT

// Package svd: the two-phase factorization over a private snapshot.
package svd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/mat"
)

// Numeric policy constants.
const (
	// eps is the relative machine precision for float64 (2⁻⁵²).
	eps = 0x1p-52

	// tiny is a denormalization guard (2⁻⁹⁶⁶): adding it to relative
	// thresholds keeps the negligibility tests meaningful for values near
	// the underflow boundary.
	tiny = 0x1p-966

	// safeMin is the smallest positive normal float64 (2⁻¹⁰²²); its square
	// root floors the rank/pseudo-inverse tolerance.
	safeMin = 0x1p-1022
)

// Decomposition is an immutable Singular Value Decomposition.
type Decomposition struct {
	values []float64   // singular values, non-increasing, length p
	u      [][]float64 // left singular vectors, rows×p (after untransposing)
	v      [][]float64 // right singular vectors, cols×p

	rows, cols int     // original input shape
	tol        float64 // rank / pseudo-inverse tolerance

	cachedU  mat.Matrix // memoized views
	cachedUT mat.Matrix
	cachedS  mat.Matrix
	cachedV  mat.Matrix
	cachedVT mat.Matrix
}

// New computes the SVD of m.
//
// Implementation:
//   - Stage 1: Validate m non-nil with positive dimensions; snapshot it,
//     transposing first when cols > rows so the elimination loop bounds stay
//     uniform on the tall orientation (U/V swap back on output).
//   - Stage 2: Householder bidiagonalization with reflector accumulation,
//     then generation passes producing explicit U and V.
//   - Stage 3: implicit-shift QR on the bidiagonal form until every
//     super-diagonal entry is negligible; finally fix the tolerance
//     tol = max(rows·σ_max·eps, √safeMin).
//
// Errors: mat.ErrNilMatrix, mat.ErrBadShape.
//
// Determinism:
//   - Fixed sweep orders throughout; the only data-dependent branching is
//     the four-case dispatch of the QR loop.
//
// Complexity:
//   - Time O(m·n²) for the tall orientation plus O(n²) per QR sweep,
//     Space O(m·n).
func New(matrix mat.Matrix) (*Decomposition, error) {
	// Stage 1: validation and snapshot on the tall orientation.
	if err := mat.ValidateNotNil(matrix); err != nil {
		return nil, fmt.Errorf("svd.New: %w", err)
	}
	rows, cols := matrix.Rows(), matrix.Cols()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("svd.New: %dx%d input: %w", rows, cols, mat.ErrBadShape)
	}

	transposed := rows < cols
	var a [][]float64
	var err error
	if transposed {
		t, terr := mat.Transpose(matrix)
		if terr != nil {
			return nil, fmt.Errorf("svd.New: %w", terr)
		}
		a, err = mat.Snapshot(t)
	} else {
		a, err = mat.Snapshot(matrix)
	}
	if err != nil {
		return nil, fmt.Errorf("svd.New: %w", err)
	}
	// from here on: m ≥ n always holds
	m, n := len(a), len(a[0])

	values := make([]float64, n)
	bigU := allocate(m, n)
	bigV := allocate(n, n)
	e := make([]float64, n)
	work := make([]float64, m)

	bidiagonalize(a, values, e, bigU, bigV, work, m, n)
	generateU(values, bigU, m, n)
	generateV(e, bigV, n)
	diagonalize(values, e, bigU, bigV, m, n)

	d := &Decomposition{values: values, rows: rows, cols: cols}
	if transposed {
		d.u, d.v = bigV, bigU
	} else {
		d.u, d.v = bigU, bigV
	}
	d.tol = math.Max(float64(m)*values[0]*eps, math.Sqrt(safeMin))

	return d, nil
}

// allocate returns a zeroed r×c 2-D slice.
func allocate(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
	}

	return out
}

// bidiagonalize reduces a (m×n, m ≥ n) to bidiagonal form in place: the
// diagonal lands in values, the super-diagonal in e, and the Householder
// reflectors are stashed in bigU / bigV for the later generation passes.
func bidiagonalize(a [][]float64, values, e []float64, bigU, bigV [][]float64, work []float64, m, n int) {
	nct := min(m-1, n)    // columns eliminated from the left
	nrt := max(0, n-2)    // rows eliminated from the right
	var i, j, k int       // loop iterators
	var t float64         // reflection scalar
	for k = 0; k < max(nct, nrt); k++ {
		if k < nct {
			// column reflector: 2-norm of a[k:m][k] without overflow,
			// signed to avoid cancellation against a[k][k]
			values[k] = 0
			for i = k; i < m; i++ {
				values[k] = math.Hypot(values[k], a[i][k])
			}
			if values[k] != 0 {
				if a[k][k] < 0 {
					values[k] = -values[k]
				}
				for i = k; i < m; i++ {
					a[i][k] /= values[k]
				}
				a[k][k]++
			}
			values[k] = -values[k]
		}
		for j = k + 1; j < n; j++ {
			if k < nct && values[k] != 0 {
				// apply the column reflector to column j
				t = 0
				for i = k; i < m; i++ {
					t += a[i][k] * a[i][j]
				}
				t = -t / a[k][k]
				for i = k; i < m; i++ {
					a[i][j] += t * a[i][k]
				}
			}
			// row k of a feeds the upcoming row transformation
			e[j] = a[k][j]
		}
		if k < nct {
			// stash the column reflector for the U generation pass
			for i = k; i < m; i++ {
				bigU[i][k] = a[i][k]
			}
		}
		if k < nrt {
			// row reflector: 2-norm of e[k+1:n], signed like above
			e[k] = 0
			for i = k + 1; i < n; i++ {
				e[k] = math.Hypot(e[k], e[i])
			}
			if e[k] != 0 {
				if e[k+1] < 0 {
					e[k] = -e[k]
				}
				for i = k + 1; i < n; i++ {
					e[i] /= e[k]
				}
				e[k+1]++
			}
			e[k] = -e[k]
			if k+1 < m && e[k] != 0 {
				// apply the row reflector to the trailing block
				for i = k + 1; i < m; i++ {
					work[i] = 0
				}
				for j = k + 1; j < n; j++ {
					for i = k + 1; i < m; i++ {
						work[i] += e[j] * a[i][j]
					}
				}
				for j = k + 1; j < n; j++ {
					t = -e[j] / e[k+1]
					for i = k + 1; i < m; i++ {
						a[i][j] += t * work[i]
					}
				}
			}
			// stash the row reflector for the V generation pass
			for i = k + 1; i < n; i++ {
				bigV[i][k] = e[i]
			}
		}
	}

	// final bidiagonal entries not covered by the loops above
	if nct < n {
		values[nct] = a[nct][nct]
	}
	if m < n {
		values[n-1] = 0
	}
	if nrt+1 < n {
		e[nrt] = a[nrt][n-1]
	}
	e[n-1] = 0
}

// generateU completes the stored column reflectors into an explicit
// orthogonal U by back-multiplying identity from the last reflector to the
// first.
func generateU(values []float64, bigU [][]float64, m, n int) {
	nct := min(m-1, n)
	var i, j, k int
	var t float64
	for j = nct; j < n; j++ {
		for i = 0; i < m; i++ {
			bigU[i][j] = 0
		}
		bigU[j][j] = 1
	}
	for k = nct - 1; k >= 0; k-- {
		if values[k] != 0 {
			for j = k + 1; j < n; j++ {
				t = 0
				for i = k; i < m; i++ {
					t += bigU[i][k] * bigU[i][j]
				}
				t = -t / bigU[k][k]
				for i = k; i < m; i++ {
					bigU[i][j] += t * bigU[i][k]
				}
			}
			for i = k; i < m; i++ {
				bigU[i][k] = -bigU[i][k]
			}
			bigU[k][k] = 1 + bigU[k][k]
			for i = 0; i < k-1; i++ {
				bigU[i][k] = 0
			}
		} else {
			for i = 0; i < m; i++ {
				bigU[i][k] = 0
			}
			bigU[k][k] = 1
		}
	}
}

// generateV completes the stored row reflectors into an explicit orthogonal
// V, last reflector first.
func generateV(e []float64, bigV [][]float64, n int) {
	nrt := max(0, n-2)
	var i, j, k int
	var t float64
	for k = n - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0 {
			for j = k + 1; j < n; j++ {
				t = 0
				for i = k + 1; i < n; i++ {
					t += bigV[i][k] * bigV[i][j]
				}
				t = -t / bigV[k+1][k]
				for i = k + 1; i < n; i++ {
					bigV[i][j] += t * bigV[i][k]
				}
			}
		}
		for i = 0; i < n; i++ {
			bigV[i][k] = 0
		}
		bigV[k][k] = 1
	}
}

// diagonalize runs the implicit-shift QR iteration on the bidiagonal form
// (diagonal in values, super-diagonal in e) until every super-diagonal
// entry is negligible. Each pass dispatches one of four cases:
//
//	case 1 — values[p-1] negligible: deflate it with Givens rotations
//	         propagated into V.
//	case 2 — values[k] negligible for k < p-1: split the problem with
//	         rotations propagated into U.
//	case 3 — no negligible element: one Wilkinson-shift QR sweep from the
//	         trailing 2×2 submatrix, updating both U and V.
//	case 4 — the trailing 2×2 block converged: flip V's column if the
//	         singular value came out negative, then bubble it into
//	         descending order across both U and V.
func diagonalize(values, e []float64, bigU, bigV [][]float64, m, n int) {
	var (
		i, j, k  int     // loop iterators
		kase     int     // dispatch selector, 1..4
		p        = n     // active tail of the bidiagonal problem
		pp       = n - 1 // last index, fixed for the sign-flip loop
		t, f, g  float64 // rotation temporaries
		cs, sn   float64 // Givens cosine/sine
		shift    float64 // Wilkinson shift
		scale    float64 // scaling guard for the shift computation
		ks       int     // split scan index
	)
	for p > 0 {
		// scan the tail of e for a negligible entry. The comparison is kept
		// as !(x > threshold) on purpose: NaN compares false, so the
		// negated form breaks out instead of looping forever.
		for k = p - 2; k >= 0; k-- {
			threshold := tiny + eps*(math.Abs(values[k])+math.Abs(values[k+1]))
			if !(math.Abs(e[k]) > threshold) {
				e[k] = 0

				break
			}
		}

		if k == p-2 {
			kase = 4
		} else {
			for ks = p - 1; ks >= k; ks-- {
				if ks == k {
					break
				}
				t = 0
				if ks != p {
					t += math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(values[ks]) <= tiny+eps*t {
					values[ks] = 0

					break
				}
			}
			switch {
			case ks == k:
				kase = 3
			case ks == p-1:
				kase = 1
			default:
				kase = 2
				k = ks
			}
		}
		k++

		switch kase {
		case 1:
			// deflate negligible values[p-1]
			f = e[p-2]
			e[p-2] = 0
			for j = p - 2; j >= k; j-- {
				t = math.Hypot(values[j], f)
				cs = values[j] / t
				sn = f / t
				values[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i = 0; i < n; i++ {
					t = cs*bigV[i][j] + sn*bigV[i][p-1]
					bigV[i][p-1] = -sn*bigV[i][j] + cs*bigV[i][p-1]
					bigV[i][j] = t
				}
			}
		case 2:
			// split at negligible values[k]
			f = e[k-1]
			e[k-1] = 0
			for j = k; j < p; j++ {
				t = math.Hypot(values[j], f)
				cs = values[j] / t
				sn = f / t
				values[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				for i = 0; i < m; i++ {
					t = cs*bigU[i][j] + sn*bigU[i][k-1]
					bigU[i][k-1] = -sn*bigU[i][j] + cs*bigU[i][k-1]
					bigU[i][j] = t
				}
			}
		case 3:
			// one QR sweep with the Wilkinson shift from the trailing 2×2
			scale = math.Max(math.Max(math.Max(math.Max(
				math.Abs(values[p-1]), math.Abs(values[p-2])), math.Abs(e[p-2])),
				math.Abs(values[k])), math.Abs(e[k]))
			sp := values[p-1] / scale
			spm1 := values[p-2] / scale
			epm1 := e[p-2] / scale
			sk := values[k] / scale
			ek := e[k] / scale
			b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2.0
			c := (sp * epm1) * (sp * epm1)
			shift = 0
			if b != 0 || c != 0 {
				shift = math.Sqrt(b*b + c)
				if b < 0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f = (sk+sp)*(sk-sp) + shift
			g = sk * ek
			// chase the bulge down the bidiagonal band
			for j = k; j < p-1; j++ {
				t = math.Hypot(f, g)
				cs = f / t
				sn = g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*values[j] + sn*e[j]
				e[j] = cs*e[j] - sn*values[j]
				g = sn * values[j+1]
				values[j+1] = cs * values[j+1]
				for i = 0; i < n; i++ {
					t = cs*bigV[i][j] + sn*bigV[i][j+1]
					bigV[i][j+1] = -sn*bigV[i][j] + cs*bigV[i][j+1]
					bigV[i][j] = t
				}
				t = math.Hypot(f, g)
				cs = f / t
				sn = g / t
				values[j] = t
				f = cs*e[j] + sn*values[j+1]
				values[j+1] = -sn*e[j] + cs*values[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < m-1 {
					for i = 0; i < m; i++ {
						t = cs*bigU[i][j] + sn*bigU[i][j+1]
						bigU[i][j+1] = -sn*bigU[i][j] + cs*bigU[i][j+1]
						bigU[i][j] = t
					}
				}
			}
			e[p-2] = f
		default:
			// convergence of the trailing block
			if values[k] <= 0 {
				// make the singular value non-negative, flipping V's column
				if values[k] < 0 {
					values[k] = -values[k]
				} else {
					values[k] = 0
				}
				for i = 0; i <= pp; i++ {
					bigV[i][k] = -bigV[i][k]
				}
			}
			// bubble into non-increasing order via adjacent swaps across
			// both U and V
			for k < pp {
				if values[k] >= values[k+1] {
					break
				}
				t = values[k]
				values[k] = values[k+1]
				values[k+1] = t
				if k < n-1 {
					for i = 0; i < n; i++ {
						t = bigV[i][k+1]
						bigV[i][k+1] = bigV[i][k]
						bigV[i][k] = t
					}
				}
				if k < m-1 {
					for i = 0; i < m; i++ {
						t = bigU[i][k+1]
						bigU[i][k+1] = bigU[i][k]
						bigU[i][k] = t
					}
				}
				k++
			}
			p--
		}
	}
}
