// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor decides whether output written to w should be highlighted.
// "auto" highlights only on a terminal and honors NO_COLOR.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && IsTerminal(w)
	}
}

// Highlight writes source to w with ANSI syntax highlighting for the
// named chroma lexer ("json", "yaml").
func Highlight(w io.Writer, source, language string) error {
	if err := quick.Highlight(w, source, language, "terminal256", "monokai"); err != nil {
		return fmt.Errorf("highlighting %s: %w", language, err)
	}
	return nil
}
