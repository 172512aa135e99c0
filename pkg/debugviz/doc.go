// Package debugviz renders a generated dungeon's terrain grid, room
// outlines, and enriched spawn points to SVG, for visual inspection during
// development without writing a custom renderer.
//
// The renderer keeps a familiar SVG-export shape — canvas setup,
// sorted-iteration-for-determinism, options-with-defaults — but repurposes
// it from a node-graph rendering (rooms as circles, connectors as lines)
// onto a rasterized tile grid (rooms as outlined rectangles, tiles as
// colored cells), since this module's Dungeon is grid-native rather than
// graph-native.
package debugviz
