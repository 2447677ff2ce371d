package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Header lists the output columns in display order.
var Header = []string{
	"COMPRADOR",
	"AGRUPAMENTOS",
	"QP (ITENS ATRIBUIDOS)",
	"QIC BASE",
	"GMP BASE",
	"TOTAL GMP",
	"TMC",
	"TOTAL QIC",
	"PDT",
	"QEP",
	"TGI",
	"DESVIO",
}

// Table renders the report as display strings: numeric columns at zero
// decimals except the average cycle time at one, the assignment list joined
// with a comma.
func (r Report) Table() [][]string {
	out := make([][]string, 0, len(r.Rows)+1)
	out = append(out, Header)
	for _, row := range r.Rows {
		out = append(out, []string{
			row.Buyer,
			strings.Join(row.Assignments, ", "),
			strconv.Itoa(row.ItemsAssigned),
			zeroDec(row.BasePending),
			zeroDec(row.BaseInProgress),
			zeroDec(row.TotalInProgress),
			oneDec(row.AverageCycleTime),
			zeroDec(row.TotalPending),
			zeroDec(row.Production),
			zeroDec(row.Supplemental),
			zeroDec(row.TotalGaugeIndex),
			zeroDec(row.Deviation),
		})
	}
	return out
}

func zeroDec(v float64) string { return fmt.Sprintf("%.0f", v) }
func oneDec(v float64) string  { return fmt.Sprintf("%.1f", v) }
