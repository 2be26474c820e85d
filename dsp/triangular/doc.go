// Package triangular implements the packed row-major layout of an N×N
// upper-triangular matrix.
//
// The packing lists, for row 1..N in order, the columns row..N in order, and
// omits the strictly-lower entries. A packed stream therefore holds
// N·(N+1)/2 elements, and the matrix coordinates of each element are implied
// by its position alone. [Iterator] reconstructs those coordinates one step
// at a time, which is what a streaming consumer needs. [Offset], [Pack] and
// [Unpack] cover the random-access and batch cases.
//
// Coordinates are 1-indexed throughout, with 1 <= row <= col <= N.
package triangular
