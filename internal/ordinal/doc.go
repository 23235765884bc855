// Package ordinal implements the value model for ordinal numbers up to and
// including ε₀.
//
// Values are a closed union of three variants:
//   - *CNF: Cantor Normal Form, a descending sum of ω-power terms with
//     arbitrary-precision positive coefficients. Exponents are themselves
//     *CNF values, so the representation is a finite tree.
//   - Epsilon0: the singleton sentinel for ε₀, the first fixed point of
//     x ↦ ω^x. It compares above every CNF value.
//   - Tower: a compact ω↑↑height value produced by simplification. It is
//     expanded to CNF on demand and never required as an arithmetic input.
//
// CRITICAL PATTERNS:
//
// Immutability:
// Values are never mutated after construction. Every operation returns a
// new value; subtrees are shared freely instead of deep-copied, which is
// safe precisely because nothing mutates them. Callers must not modify a
// coefficient obtained from a Term.
//
// Normal-form invariants (enforced by FromTerms, assumed everywhere else):
// exponents strictly decreasing, coefficients strictly positive, at most
// one exponent-zero term and it is last, the empty term list is 0.
//
// The comparator is deterministic and total. All work is single-threaded
// and synchronous; the only shared mutable state in a calculation is the
// budget meter threaded through the public entry points.
package ordinal
