// Package site models the configuration of the notes site and validates it.
//
// A Declaration is the raw, YAML-shaped description of the site. Build turns it
// into a Config: every enumeration canonicalized, every route prefix in its
// canonical form and every cross reference (navbar and footer targets, doc
// sidebar collections) checked. Build is all-or-nothing and reports the first
// violation in declaration order:
//
//	identity -> blog -> collections -> navbar -> footer -> presentation
//
// A Config is immutable; accessors return copies, so a single value can be
// shared freely once built.
package site
