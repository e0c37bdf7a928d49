package service

import (
	"strings"
	"testing"
	"time"

	"afa_backend/internals/features/finance/fees/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Anna", want: `"Anna"`},
		{name: "empty", in: "", want: `""`},
		{name: "internal quotes doubled", in: `dit "Nil"`, want: `"dit ""Nil"""`},
		{name: "comma stays inside quotes", in: "Puig, Anna", want: `"Puig, Anna"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := csvEscape(tt.in); got != tt.want {
				t.Errorf("csvEscape(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildPaymentsCSV(t *testing.T) {
	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC)
	ref := "REF-001"
	notes := `quota "tardor"`

	payments := []model.PaymentModel{
		{
			PaymentStudentName:   "Anna Puig",
			PaymentCourse:        "5è",
			PaymentActivities:    []string{"Futbol", "Teatre"},
			PaymentAmountCents:   2550,
			PaymentDueDate:       &due,
			PaymentStatus:        model.PaymentStatusPaid,
			PaymentPaidAt:        &paid,
			PaymentBankReference: &ref,
			PaymentNotes:         &notes,
		},
		{
			PaymentStudentName: "Joan Vila",
			PaymentAmountCents: 1000,
			PaymentStatus:      model.PaymentStatusPending,
		},
	}

	out := string(BuildPaymentsCSV(payments))

	if !strings.HasPrefix(out, csvBOM) {
		t.Error("missing UTF-8 BOM prefix")
	}

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, csvBOM), "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"Alumne/a","Curs"`) {
		t.Errorf("unexpected header: %s", lines[0])
	}

	row := lines[1]
	for _, want := range []string{`"Futbol;Teatre"`, `"25.50"`, `"2026-09-30"`, `"Pagat"`, `"2026-09-12"`, `"REF-001"`, `"quota ""tardor"""`} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %s: %s", want, row)
		}
	}

	// absent fields render as empty quoted strings
	if !strings.Contains(lines[2], `"Pendent"`) || !strings.Contains(lines[2], `"",""`) {
		t.Errorf("pending row wrong: %s", lines[2])
	}
}
