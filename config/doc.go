// Package config turns user input into validated search parameters.
//
// Values come from, in decreasing precedence: bound command-line flags,
// RIVERCROSS_* environment variables, an optional YAML file, and the
// defaults below. Every value is parsed from its textual form, so a
// non-numeric or negative count is reported as ErrInvalidValue before a
// search is started.
//
// Keys
//
//	cannibals       non-negative integer (default 3)
//	missionaries    non-negative integer (default 3)
//	max_iterations  non-negative integer (default 30)
//	format          "text" or "json" (default "text")
//	trace           bool, log every node event (default false)
//	step_delay      duration between iterations (default 0s)
//	log_level       debug, info, warn or error (default "info")
package config
