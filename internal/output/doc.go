// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders shape reports. It owns the text/table/json/yaml
// switch, dataset sorting, fixed-point formatting and the summary block.
package output
