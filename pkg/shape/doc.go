// Package shape defines the input data model for shapeboard.
//
// # Overview
//
// A board is described by an ordered list of [Descriptor] values. Each
// descriptor names a shape [Kind], an edge or diameter size in pixels, a fill
// color, and an optional fixed [Point]. Descriptors are owned by the caller and
// are never mutated by the rendering packages.
//
// # Kinds
//
// [Kind] is a closed variant over circle, square and triangle. Parsing never
// fails: an unrecognized name yields [KindUnknown] carrying the raw name, so
// renderers handle the unknown case explicitly instead of falling through a
// string comparison.
//
//	k := shape.ParseKind("hexagon")
//	k.Known()  // false
//	k.Name()   // "hexagon"
//
// # Colors
//
// Colors are passed through uninterpreted. Vector sinks emit them verbatim;
// raster sinks use [ParseColor], which understands hex notation and CSS color
// names. An unparseable color is not an error.
package shape
