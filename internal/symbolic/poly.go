package symbolic

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// factor is one symbol raised to a positive power inside a monomial.
type factor struct {
	sym string
	pow int
}

// term is one monomial with its coefficient. Factors are sorted by symbol
// name and carry strictly positive powers; the constant term has no factors.
type term struct {
	coeff   *big.Rat
	factors []factor
}

// poly is a multivariate polynomial in normal form: monomial key → term,
// with no zero-coefficient entries. The empty map is the zero polynomial.
type poly map[string]term

// monoKey builds the canonical map key for a sorted factor list, e.g.
// "x^2*y". The constant monomial keys as "".
func monoKey(factors []factor) string {
	var sb strings.Builder
	for i, f := range factors {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(f.sym)
		if f.pow != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(f.pow))
		}
	}
	return sb.String()
}

func polyZero() poly { return poly{} }

func polyNum(r *big.Rat) poly {
	if r.Sign() == 0 {
		return polyZero()
	}
	return poly{"": {coeff: new(big.Rat).Set(r), factors: nil}}
}

func polyOne() poly { return polyNum(big.NewRat(1, 1)) }

func polySym(name string) poly {
	f := []factor{{sym: name, pow: 1}}
	return poly{monoKey(f): {coeff: big.NewRat(1, 1), factors: f}}
}

func polyAdd(a, b poly) poly {
	out := make(poly, len(a)+len(b))
	for k, t := range a {
		out[k] = term{coeff: new(big.Rat).Set(t.coeff), factors: t.factors}
	}
	for k, t := range b {
		if existing, ok := out[k]; ok {
			sum := new(big.Rat).Add(existing.coeff, t.coeff)
			if sum.Sign() == 0 {
				delete(out, k)
			} else {
				out[k] = term{coeff: sum, factors: t.factors}
			}
		} else {
			out[k] = term{coeff: new(big.Rat).Set(t.coeff), factors: t.factors}
		}
	}
	return out
}

func polyNeg(a poly) poly {
	out := make(poly, len(a))
	for k, t := range a {
		out[k] = term{coeff: new(big.Rat).Neg(t.coeff), factors: t.factors}
	}
	return out
}

// mulFactors merges two sorted factor lists, adding powers of shared
// symbols.
func mulFactors(a, b []factor) []factor {
	out := make([]factor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].sym == b[j].sym:
			out = append(out, factor{sym: a[i].sym, pow: a[i].pow + b[j].pow})
			i++
			j++
		case a[i].sym < b[j].sym:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func polyMul(a, b poly) poly {
	out := polyZero()
	for _, ta := range a {
		for _, tb := range b {
			factors := mulFactors(ta.factors, tb.factors)
			k := monoKey(factors)
			coeff := new(big.Rat).Mul(ta.coeff, tb.coeff)
			if existing, ok := out[k]; ok {
				coeff.Add(coeff, existing.coeff)
			}
			if coeff.Sign() == 0 {
				delete(out, k)
			} else {
				out[k] = term{coeff: coeff, factors: factors}
			}
		}
	}
	return out
}

func polyPow(a poly, n int) poly {
	out := polyOne()
	for i := 0; i < n; i++ {
		out = polyMul(out, a)
	}
	return out
}

func polyIsZero(a poly) bool { return len(a) == 0 }

func polyIsOne(a poly) bool {
	if len(a) != 1 {
		return false
	}
	t, ok := a[""]
	return ok && t.coeff.Cmp(big.NewRat(1, 1)) == 0
}

func polyEqual(a, b poly) bool {
	if len(a) != len(b) {
		return false
	}
	for k, ta := range a {
		tb, ok := b[k]
		if !ok || ta.coeff.Cmp(tb.coeff) != 0 {
			return false
		}
	}
	return true
}

// polyString renders the polynomial deterministically: monomials sorted by
// descending total degree, then by key. The zero polynomial renders as "0".
func polyString(a poly) string {
	if polyIsZero(a) {
		return "0"
	}

	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	degree := func(k string) int {
		d := 0
		for _, f := range a[k].factors {
			d += f.pow
		}
		return d
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := degree(keys[i]), degree(keys[j])
		if di != dj {
			return di > dj
		}
		return keys[i] < keys[j]
	})

	var sb strings.Builder
	for i, k := range keys {
		t := a[k]
		coeff := t.coeff
		neg := coeff.Sign() < 0
		if i == 0 {
			if neg {
				sb.WriteByte('-')
			}
		} else {
			if neg {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}

		abs := new(big.Rat).Abs(coeff)
		switch {
		case k == "":
			sb.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(k)
		default:
			sb.WriteString(abs.RatString())
			sb.WriteByte('*')
			sb.WriteString(k)
		}
	}
	return sb.String()
}
