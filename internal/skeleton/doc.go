// Package skeleton declares the generated project layout as a static node
// tree and materializes it on disk. Directories are created if absent; files
// are created only when missing, so hand-edited content survives re-runs.
package skeleton
