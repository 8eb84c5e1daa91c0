// Package lvmorph is a pure-Go toolkit for grayscale and binary
// mathematical morphology over 2D matrices, built around logarithmic
// rectangle decomposition and octagon disk approximation.
//
// 🚀 What is lvmorph?
//
//	A small, allocation-free-per-step morphology engine that brings together:
//		• Matrices: generic row-major Dense[T] for bit, 8/16/32-bit and float samples
//		• Patterns: immutable point sets, Minkowski sums, reference shapes
//		• Services: generic pattern dilation/erosion with five boundary modes
//		• Fast path: fused 3×3 square and cross kernels
//		• Engine: rectangles in O(log side) passes, octagons, open/close
//		• Images: image.Image ⇄ matrix conversion via golang.org/x/image
//
// ✨ Why choose lvmorph?
//
//   - Large structuring elements stay cheap: a 101×101 square is 15 passes
//   - Ping-pong scratch pair: no allocation between passes
//   - Multithreading per pass, identical output either way
//   - TOML configuration and zerolog logging, silent by default
//
// Packages:
//
//	matrix/      : Matrix interface, Dense[T], continuation modes, validators
//	pattern/     : Point, Pattern, Rectangle, Cross, Octagon, MinkowskiSum
//	morphology/  : Service, Basic, Kernel3x3, Filter
//	rectmorph/   : Engine (rectangles, octagons, open/close), Config, Stats
//	imageconv/   : ToGray, ToBinary, FromGray, FromBinary, Scale
//	examples/    : scan cleanup demo program
//
// Quick ASCII example, DilateOctagon(3) of one sample:
//
//	...###...
//	..#####..
//	.#######.
//	.#######.
//	.#######.
//	..#####..
//	...###...
//
//	go get github.com/katalvlaran/lvmorph
package lvmorph
