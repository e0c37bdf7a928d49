package service

import (
	"testing"

	"afa_backend/internals/features/inscriptions/model"
)

func sampleRows() []InscriptionFlat {
	return []InscriptionFlat{
		{Name: "Anna", Surname: "Puig", Course: "5è", Activities: []string{"Futbol", "Teatre"}, ParentEmail: "puig@example.com", Status: model.InscriptionStatusActive},
		{Name: "Joan", Surname: "Vila", Course: "5è", Activities: []string{"Escacs"}, ParentEmail: "vila@example.com", Status: model.InscriptionStatusBaja},
		{Name: "Marta", Surname: "Roca", Course: "6è", Activities: []string{"Futbol"}, ParentEmail: "roca@example.com", Status: model.InscriptionStatusPending},
		{Name: "Pol", Surname: "Serra", Course: "I3", Activities: []string{}, ParentEmail: "serra@example.com", Status: model.InscriptionStatusActive},
	}
}

func TestFilterInscriptionsIdentity(t *testing.T) {
	rows := sampleRows()
	got := FilterInscriptions(rows, InscriptionFilters{Status: StatusFilterAll})
	if len(got) != len(rows) {
		t.Fatalf("identity filter dropped rows: got %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].Name != rows[i].Name {
			t.Errorf("row %d reordered: %q", i, got[i].Name)
		}
	}
}

func TestFilterInscriptions(t *testing.T) {
	tests := []struct {
		name    string
		filters InscriptionFilters
		want    []string // names in expected order
	}{
		{name: "course exact", filters: InscriptionFilters{Course: "5è", Status: StatusFilterAll}, want: []string{"Anna", "Joan"}},
		{name: "course no match", filters: InscriptionFilters{Course: "2n", Status: StatusFilterAll}, want: []string{}},
		{name: "activity containment", filters: InscriptionFilters{Activity: "Futbol", Status: StatusFilterAll}, want: []string{"Anna", "Marta"}},
		{name: "status baja exact subset", filters: InscriptionFilters{Status: StatusFilterBaja}, want: []string{"Joan"}},
		{name: "status active means not baja, pending included", filters: InscriptionFilters{Status: StatusFilterActive}, want: []string{"Anna", "Marta", "Pol"}},
		{name: "search matches surname", filters: InscriptionFilters{Status: StatusFilterAll, Search: "roca"}, want: []string{"Marta"}},
		{name: "search matches parent email", filters: InscriptionFilters{Status: StatusFilterAll, Search: "vila@"}, want: []string{"Joan"}},
		{name: "predicates AND together", filters: InscriptionFilters{Course: "5è", Activity: "Futbol", Status: StatusFilterActive}, want: []string{"Anna"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterInscriptions(sampleRows(), tt.filters)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("row %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestFilterInscriptionsSearchCaseInsensitive(t *testing.T) {
	upper := FilterInscriptions(sampleRows(), InscriptionFilters{Status: StatusFilterAll, Search: "ANNA"})
	lower := FilterInscriptions(sampleRows(), InscriptionFilters{Status: StatusFilterAll, Search: "anna"})
	if len(upper) != len(lower) || len(upper) != 1 {
		t.Fatalf("case sensitivity leak: upper=%d lower=%d", len(upper), len(lower))
	}
	if upper[0].Name != lower[0].Name {
		t.Errorf("different rows matched: %q vs %q", upper[0].Name, lower[0].Name)
	}
}

func TestFilterInscriptionsMonotonic(t *testing.T) {
	rows := sampleRows()
	base := FilterInscriptions(rows, InscriptionFilters{Status: StatusFilterAll})

	narrowings := []InscriptionFilters{
		{Course: "5è", Status: StatusFilterAll},
		{Activity: "Futbol", Status: StatusFilterAll},
		{Status: StatusFilterBaja},
		{Search: "puig", Status: StatusFilterAll},
		{Course: "6è", Activity: "Futbol", Status: StatusFilterActive, Search: "marta"},
	}
	for _, f := range narrowings {
		got := FilterInscriptions(rows, f)
		if len(got) > len(base) {
			t.Errorf("filter %+v grew the result set: %d > %d", f, len(got), len(base))
		}
	}
}

func TestFilterInscriptionsBajaComplement(t *testing.T) {
	rows := sampleRows()
	baja := FilterInscriptions(rows, InscriptionFilters{Status: StatusFilterBaja})
	active := FilterInscriptions(rows, InscriptionFilters{Status: StatusFilterActive})
	if len(baja)+len(active) != len(rows) {
		t.Errorf("baja (%d) + active (%d) != total (%d)", len(baja), len(active), len(rows))
	}
	for _, r := range baja {
		if r.Status != model.InscriptionStatusBaja {
			t.Errorf("baja bucket got %q", r.Status)
		}
	}
	for _, r := range active {
		if r.Status == model.InscriptionStatusBaja {
			t.Error("active bucket got a baja row")
		}
	}
}

func TestFilterByCourseAcrossShapes(t *testing.T) {
	// two students in 5è/6è plus one legacy single-student in 5è:
	// filtering by 5è must return exactly 2 rows.
	multi := multiInscription(student("A", "A", "5è"), student("B", "B", "6è"))
	legacy := legacyInscription("C", "C", "5è", nil, "active", false)

	rows := FlattenInscriptions([]model.InscriptionModel{multi, legacy})
	got := FilterInscriptions(rows, InscriptionFilters{Course: "5è", Status: StatusFilterAll})
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
}
