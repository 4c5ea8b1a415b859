// Package pattern generates coordinate sequences over the geom coordinate
// space: neighborhoods, Bresenham lines and circles, and cluster boundary
// layers.
//
// Patterns hold no cell data and know nothing about any particular grid.
// Their sequences are meant to be handed to grid.Select or grid.SelectMut,
// and the same sequence can be replayed against any number of grids.
package pattern
