// Package classify collects the pure heuristic functions used by the
// condensation pipeline: rule polarity detection, generic-heading detection,
// interactive-annotation stripping, and best-snippet selection. Every
// classifier is parameterized by its marker vocabulary so the defaults can be
// extended from configuration or tests without touching extraction or
// assembly logic.
package classify
