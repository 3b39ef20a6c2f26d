/*
Package curves implements the elliptic curve group over prime fields.

A Curve is the short Weierstrass curve y^2 = x^3 + a*x + b; its Points form
an abelian group under the chord-and-tangent law, with the point at infinity
as identity. Points are immutable: Add, Double and ScalarMult always return
new values.

Params bind a curve to a generator G and the order N of the subgroup it
generates. Secp256k1 returns the only production parameter set; NewParams
exists so that tests can exercise the same code on small curves, e.g. the
curve y^2 = x^3 + 7 over F_223 whose point (47, 71) has order 21.

Scalar multiplication uses double-and-add in affine coordinates. It is not
constant time.
*/
package curves
