// Package visibility reports when regions of a scrolling document enter
// the visible window.
//
// An [Observer] owns the current [Viewport] and samples the intersection
// ratio of every observed [Region] whenever the viewport or a region moves.
// A [Tracker] turns those samples into a one-shot "has been seen" flag:
// it flips to true the first time the ratio reaches its threshold and
// then releases its observation.
//
// Regions and viewports are measured in document rows.
package visibility
