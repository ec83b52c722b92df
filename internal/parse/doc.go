// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package parse converts command-line shape specifications, compact or
// inline JSON, into geometry shapes.
package parse
