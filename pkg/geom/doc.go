// Package geom provides the dense grid, bit-packed grid, and flood-fill
// primitives shared by every generation pass.
//
// Grid is a byte matrix with bounds-checked access (out-of-bounds reads
// return the wall tile kind). BitGrid packs booleans into 32-bit words;
// Pool recycles BitGrids of matching dimensions.
package geom
