// Package installer shells out to the external package-management tool, one
// `<tool> add <spec>` invocation per requirement. Batches are fail-fast: the
// first non-zero exit aborts all remaining requirements.
package installer
