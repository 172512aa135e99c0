// Package connect builds the connectivity graph between rooms and lowers
// its edges to grid paths: a complete weighted graph over room centroids,
// Kruskal's minimum spanning tree over a deterministic union-find, extra
// loop edges, and four corridor carving styles.
package connect
