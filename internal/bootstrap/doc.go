// Package bootstrap sequences the scaffolding pipeline: normalize the
// manifest, parse the requirement list, install dependencies one by one, and
// materialize the project skeleton. Each phase traps its own faults and the
// caller receives a boolean outcome plus tagged diagnostics; no raw error
// escapes the pipeline boundary.
package bootstrap
