// Package blocks provides reusable layout geometry for widget toolkits.
//
// Users import this single package for the complete public API: the flow
// layout, the column layout and its manager, geometry primitives, and the
// Text leaf item for cell-based hosts.
package blocks
