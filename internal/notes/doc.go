// Package notes reads the notes directory: it maps note names to files,
// lists notes and templates, finds the most recently modified note, and
// extracts titles for display.
//
// Listing order is always sorted by name. Recency is computed from
// modification times only and never depends on the order in which the
// filesystem returns entries.
package notes
