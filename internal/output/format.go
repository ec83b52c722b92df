// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DefaultPrecision is the fixed-point precision used when none is configured.
const DefaultPrecision = 2

// FormatFixed renders v as fixed-point decimal text.
func FormatFixed(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}

// FormatTotal renders an aggregate value. With human set, large totals get
// comma grouping (1234.5 -> 1,234.50).
func FormatTotal(v float64, precision int, human bool) string {
	if human {
		return humanize.CommafWithDigits(v, precision)
	}
	return FormatFixed(v, precision)
}
