// Package requirements parses requirements.txt-style requirement lists. It
// extracts package names and version constraints, skipping comments, blank
// lines, and malformed entries without aborting the batch. VCS URLs, editable
// installs, and environment markers are not supported.
package requirements
