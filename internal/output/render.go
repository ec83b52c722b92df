// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/shapectl/internal/config"
	"github.com/staranto/shapectl/internal/geometry"
)

// Options collects the rendering knobs resolved from flags and config.
type Options struct {
	Mode      string // text, table, json, yaml
	Color     bool
	Titles    bool
	Sort      string
	Human     bool
	Precision int
}

// columns is the fixed column order for table/json/yaml output.
var columns = []string{"shape", "dimensions", "area", "perimeter"}

// Rows converts shapes into the row dataset the renderers and sorter work
// on. Metrics stay float64 so sorting and structured output keep full
// precision; formatting happens at render time.
func Rows(shapes []*geometry.Shape, precision int) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(shapes))
	for _, s := range shapes {
		rows = append(rows, map[string]interface{}{
			"shape":      s.Name(),
			"dimensions": s.Figure().Dimensions(precision),
			"area":       s.Area(),
			"perimeter":  s.Perimeter(),
		})
	}
	return rows
}

// Render emits the shape collection per opts. It is the single switch point
// for all output modes.
func Render(w io.Writer, shapes []*geometry.Shape, opts Options) error {
	if w == nil {
		w = os.Stdout
	}
	if opts.Precision <= 0 {
		opts.Precision = DefaultPrecision
	}

	if opts.Mode == "text" || opts.Mode == "" {
		DescribeShapes(w, shapes, opts.Precision)
		return nil
	}

	rows := Rows(shapes, opts.Precision)
	SortDataset(rows, opts.Sort)

	switch opts.Mode {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = w.Write(jsonOutput)
		_, _ = fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(w, rows, opts)
	}

	return nil
}

// DescribeShapes prints the per-shape prose blocks.
func DescribeShapes(w io.Writer, shapes []*geometry.Shape, precision int) {
	for _, s := range shapes {
		fmt.Fprintln(w, s.Describe(precision))
	}
}

// Summary prints the aggregate statistics block. An empty collection is an
// explicit error rather than a division by zero.
func Summary(w io.Writer, stats geometry.Stats, opts Options) error {
	if opts.Precision <= 0 {
		opts.Precision = DefaultPrecision
	}

	avgArea, err := stats.AverageArea()
	if err != nil {
		return fmt.Errorf("cannot summarize: %w", err)
	}

	fmt.Fprintln(w, "=== Summary Statistics ===")
	fmt.Fprintf(w, "Total shapes: %d\n", stats.Count)
	fmt.Fprintf(w, "Total area: %s square units\n",
		FormatTotal(stats.TotalArea, opts.Precision, opts.Human))
	fmt.Fprintf(w, "Total perimeter: %s units\n",
		FormatTotal(stats.TotalPerimeter, opts.Precision, opts.Human))
	fmt.Fprintf(w, "Average area: %s square units\n",
		FormatTotal(avgArea, opts.Precision, opts.Human))

	return nil
}

// TableWriter renders the result set in tabular form honoring color, titles
// and padding options.
func TableWriter(w io.Writer, resultSet []map[string]interface{}, opts Options) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if colorEnabled(opts) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, cellText(result[col], opts.Precision))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 2)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		headers := make([]string, 0, len(columns))
		for _, col := range columns {
			headers = append(headers, strings.ToUpper(col[:1])+col[1:])
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

// SortDataset orders rows in place per a comma-separated sort spec. A '-'
// prefix sorts that key descending; '!' compares strings case-sensitively.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		key           string
		descending    bool
		caseSensitive bool
	}

	//nolint:prealloc
	var keys []sortKey
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		k := sortKey{key: part}
		if strings.HasPrefix(k.key, "-") {
			k.descending = true
			k.key = k.key[1:]
		}
		if strings.HasPrefix(k.key, "!") {
			k.caseSensitive = true
			k.key = k.key[1:]
		}
		if k.key != "" {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		log.Debugf("empty sort spec: %q", spec)
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			cmp := compareValues(dataset[i][k.key], dataset[j][k.key], k.caseSensitive)
			if cmp == 0 {
				continue
			}
			if k.descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues compares two row values, numerically when both are float64
// and lexically otherwise.
func compareValues(a, b interface{}, caseSensitive bool) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	if !caseSensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

// cellText renders a row value for tabular display.
func cellText(value interface{}, precision int) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		return v
	case float64:
		return FormatFixed(v, precision)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// colorEnabled honors the flag but never colors a non-terminal stream.
func colorEnabled(opts Options) bool {
	return opts.Color && term.IsTerminal(int(os.Stdout.Fd()))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
