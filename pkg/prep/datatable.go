package prep

import (
	"strconv"
	"strings"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// markDataTables annotates every <table> with _readabilityDataTable per the
// §4.4 cascading rule set.
func markDataTables(root *selection) {
	root.Find("table").Each(func(_ int, table *selection) {
		table.SetAttr("_readabilityDataTable", strconv.FormatBool(isDataTable(table)))
	})
}

func isDataTable(table *selection) bool {
	if v, ok := htmlnode.AttrFold(table, "role"); ok && strings.EqualFold(v, "presentation") {
		return false
	}
	if v, ok := htmlnode.AttrFold(table, "datatable"); ok && v == "0" {
		return false
	}
	if v, ok := htmlnode.AttrFold(table, "summary"); ok && strings.TrimSpace(v) != "" {
		return true
	}
	if caption := table.Find("caption").First(); caption.Length() > 0 && strings.TrimSpace(caption.Text()) != "" {
		return true
	}
	if table.Find("col, colgroup, tfoot, thead, th").Length() > 0 {
		return true
	}
	if table.Find("table").Length() > 0 {
		return false
	}
	rows, cols := getRowAndColumnCount(table)
	if rows >= 10 || cols > 4 {
		return true
	}
	return rows*cols > 10
}

// getRowAndColumnCount counts a table's rows and columns honoring
// rowspan/colspan, each floored to a minimum of 1.
func getRowAndColumnCount(table *selection) (rows, cols int) {
	table.Find("tr").Each(func(_ int, tr *selection) {
		rowSpan := 1
		if v, ok := htmlnode.AttrFold(tr, "rowspan"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
				rowSpan = n
			}
		}
		rows += rowSpan

		colsInRow := 0
		tr.Find("td").Each(func(_ int, td *selection) {
			span := 1
			if v, ok := htmlnode.AttrFold(td, "colspan"); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
					span = n
				}
			}
			colsInRow += span
		})
		if colsInRow > cols {
			cols = colsInRow
		}
	})
	return rows, cols
}
