// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the contact
// method tools.
//
// Configuration comes from a single file named either by the
// PAGERDUTY_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery and no other environment
// variable overrides a setting; command-line flags that are explicitly
// set take precedence over the file.
//
// A file only needs the keys it changes:
//
//	output:
//	  format: yaml
//	  compression: zstd
//
// Unknown keys and out-of-range values are rejected at load time, with
// every problem reported together.
//
// This package depends on no other packages in this module.
package config
