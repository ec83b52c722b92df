// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the release version reported by --version.
package version

// Version is stamped by the release workflow via -ldflags.
var Version = "dev"
