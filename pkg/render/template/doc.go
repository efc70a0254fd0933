// Package template defines the renderer-agnostic template seam used to wrap
// article skeletons into complete documents.
package template
