// Package export writes trajectory sets as CSV, JSON or SVG.
package export
