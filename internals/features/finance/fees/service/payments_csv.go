package service

import (
	"fmt"
	"strings"
	"time"

	"afa_backend/internals/features/finance/fees/model"
)

// UTF-8 byte-order mark so spreadsheet apps pick the right encoding.
const csvBOM = "\uFEFF"

var csvHeader = []string{
	"Alumne/a", "Curs", "Activitats", "Import", "Venciment",
	"Estat", "Data pagament", "Referència bancària", "Notes",
}

// BuildPaymentsCSV renders the payments report. Every value is wrapped in
// double quotes with internal quotes doubled; activities join with ";".
func BuildPaymentsCSV(payments []model.PaymentModel) []byte {
	var b strings.Builder
	b.WriteString(csvBOM)
	writeCSVRow(&b, csvHeader)

	for _, p := range payments {
		writeCSVRow(&b, []string{
			p.PaymentStudentName,
			p.PaymentCourse,
			strings.Join(p.PaymentActivities, ";"),
			formatAmount(p.PaymentAmountCents),
			formatDate(p.PaymentDueDate),
			model.PaymentStatusLabels[p.PaymentStatus],
			formatDate(p.PaymentPaidAt),
			derefOr(p.PaymentBankReference, ""),
			derefOr(p.PaymentNotes, ""),
		})
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvEscape(v))
	}
	b.WriteString("\r\n")
}

func csvEscape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatAmount(cents int) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
