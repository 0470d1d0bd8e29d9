// SPDX-License-Identifier: MIT

// Package config holds the parameters of the timeline cred pipeline and
// parses them from YAML.
//
//	alpha: 0.05
//	interval_decay: 0.5
//	convergence_threshold: 1e-7
//	max_iterations: 255
//	synthetic_loop_weight: 0.001
//	scoring_node_prefixes:
//	  - [sourcecred, github, USERLIKE]
//
// The package performs no file I/O; callers read the bytes.
//
// Errors:
//
//	ErrParse         - malformed YAML or unknown keys
//	ErrInvalidParams - a value out of range or a malformed scoring prefix
package config
