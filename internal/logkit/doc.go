// Package logkit provides a caller-owned registry of named log channels,
// each backed by its own file sink. Requesting an already-registered channel
// returns the existing logger, so sinks are never attached twice.
package logkit
