// Package assemble turns output specs into finished artifacts: it resolves
// source patterns, parses and condenses every document, concatenates the
// per-document blocks under the artifact title, and enforces the global line
// cap. Unreadable sources degrade the artifact gracefully instead of
// aborting the build.
package assemble
