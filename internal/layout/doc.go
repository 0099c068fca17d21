// Package layout implements the pure-Go layout engines behind the blocks
// package.
//
// It provides a flow layout that wraps items onto new rows based on available
// width, and a column layout whose per-column widths are unified across
// multiple independent layouts by a shared ColumnManager. Types are
// re-exported through the root blocks package for public consumption.
//
// All layout passes are synchronous and run on the host toolkit's UI thread;
// the engines hold no locks and spawn no goroutines.
package layout
