package service

import (
	"testing"

	"github.com/google/uuid"

	"afa_backend/internals/features/inscriptions/model"
)

func strPtr(s string) *string { return &s }

func legacyInscription(name, surname, course string, activities []string, status model.InscriptionStatus, suspended bool) model.InscriptionModel {
	return model.InscriptionModel{
		InscriptionID:                 uuid.New(),
		InscriptionParentPhone:        "600111222",
		InscriptionParentEmail:        "pare@example.com",
		InscriptionAFAMember:          true,
		InscriptionStatus:             status,
		InscriptionStudentName:        strPtr(name),
		InscriptionStudentSurname:     strPtr(surname),
		InscriptionStudentCourse:      strPtr(course),
		InscriptionSelectedActivities: activities,
		InscriptionSuspended:          suspended,
	}
}

func multiInscription(students ...model.InscriptionStudentModel) model.InscriptionModel {
	return model.InscriptionModel{
		InscriptionID:          uuid.New(),
		InscriptionParentPhone: "600333444",
		InscriptionParentEmail: "mare@example.com",
		InscriptionAFAMember:   false,
		InscriptionStatus:      model.InscriptionStatusActive,
		Students:               students,
	}
}

func student(name, surname, course string, activities ...string) model.InscriptionStudentModel {
	return model.InscriptionStudentModel{
		InscriptionStudentID:         uuid.New(),
		InscriptionStudentName:       name,
		InscriptionStudentSurname:    surname,
		InscriptionStudentCourse:     course,
		InscriptionStudentActivities: activities,
	}
}

func TestFlattenInscriptionsRowCount(t *testing.T) {
	tests := []struct {
		name string
		in   []model.InscriptionModel
		want int
	}{
		{name: "empty input", in: nil, want: 0},
		{name: "one legacy", in: []model.InscriptionModel{legacyInscription("Anna", "Puig", "I3", []string{"Futbol"}, "active", false)}, want: 1},
		{name: "one multi with three students", in: []model.InscriptionModel{multiInscription(student("A", "A", "1r"), student("B", "B", "2n"), student("C", "C", "3r"))}, want: 3},
		{name: "mixed", in: []model.InscriptionModel{
			multiInscription(student("A", "A", "1r"), student("B", "B", "2n")),
			legacyInscription("C", "C", "5è", nil, "active", false),
		}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenInscriptions(tt.in)
			if len(got) != tt.want {
				t.Errorf("FlattenInscriptions() rows = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFlattenInscriptionsMultiStudentInheritsParentFields(t *testing.T) {
	ins := multiInscription(student("Marta", "Roca", "4t", "Teatre"), student("Pol", "Roca", "6è", "Escacs"))
	ins.InscriptionAFAMember = true

	rows := FlattenInscriptions([]model.InscriptionModel{ins})
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for i, r := range rows {
		if r.ParentPhone != ins.InscriptionParentPhone {
			t.Errorf("row %d ParentPhone = %q, want %q", i, r.ParentPhone, ins.InscriptionParentPhone)
		}
		if r.ParentEmail != ins.InscriptionParentEmail {
			t.Errorf("row %d ParentEmail = %q, want %q", i, r.ParentEmail, ins.InscriptionParentEmail)
		}
		if !r.AFAMember {
			t.Errorf("row %d AFAMember = false, want true", i)
		}
	}
	// student order preserved
	if rows[0].Name != "Marta" || rows[1].Name != "Pol" {
		t.Errorf("student order not preserved: %q, %q", rows[0].Name, rows[1].Name)
	}
}

func TestFlattenInscriptionsLegacyRoundTrip(t *testing.T) {
	ins := legacyInscription("Anna", "Puig", "I3", []string{"Futbol"}, "active", false)

	rows := FlattenInscriptions([]model.InscriptionModel{ins})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Name != "Anna" || r.Surname != "Puig" || r.Course != "I3" {
		t.Errorf("student fields = %q %q %q", r.Name, r.Surname, r.Course)
	}
	if len(r.Activities) != 1 || r.Activities[0] != "Futbol" {
		t.Errorf("Activities = %v, want [Futbol]", r.Activities)
	}
	if r.Status != model.InscriptionStatusActive {
		t.Errorf("Status = %q, want active", r.Status)
	}
	if r.Suspended {
		t.Error("Suspended = true, want false")
	}
}

func TestFlattenInscriptionsLegacyDefaults(t *testing.T) {
	// absent fields default to empty, never panic
	ins := model.InscriptionModel{
		InscriptionID:          uuid.New(),
		InscriptionParentPhone: "600",
		InscriptionParentEmail: "x@example.com",
	}

	rows := FlattenInscriptions([]model.InscriptionModel{ins})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Name != "" || r.Surname != "" || r.Course != "" {
		t.Errorf("defaults = %q %q %q, want empty strings", r.Name, r.Surname, r.Course)
	}
	if r.Activities == nil || len(r.Activities) != 0 {
		t.Errorf("Activities = %#v, want empty slice", r.Activities)
	}
	if r.Status != model.InscriptionStatusActive {
		t.Errorf("Status = %q, want default active", r.Status)
	}
}

func TestFlattenInscriptionsLegacyStatusPreserved(t *testing.T) {
	ins := legacyInscription("Joan", "Vila", "2n", nil, model.InscriptionStatusBaja, true)

	rows := FlattenInscriptions([]model.InscriptionModel{ins})
	if rows[0].Status != model.InscriptionStatusBaja {
		t.Errorf("Status = %q, want baja", rows[0].Status)
	}
	if !rows[0].Suspended {
		t.Error("Suspended = false, want carried-through true")
	}
}

func TestFlattenInscriptionsStudentSuspendedCarried(t *testing.T) {
	st := student("Laia", "Serra", "3r", "Robòtica")
	st.InscriptionStudentSuspended = true
	ins := multiInscription(st, student("Nil", "Serra", "5è"))

	rows := FlattenInscriptions([]model.InscriptionModel{ins})
	if !rows[0].Suspended {
		t.Error("per-student suspended flag not carried through")
	}
	if rows[1].Suspended {
		t.Error("second student wrongly suspended")
	}
}
