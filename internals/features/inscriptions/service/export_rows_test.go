package service

import (
	"sort"
	"testing"

	"afa_backend/internals/features/inscriptions/model"
)

func TestGetFlattenedDataExplodesAndSorts(t *testing.T) {
	st := student("Anna", "Puig", "2n", "Teatre", "Escacs")
	ins := multiInscription(st)

	rows := GetFlattenedData([]model.InscriptionModel{ins}, true)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want one per (student, activity) pair", len(rows))
	}
	if rows[0].SingleActivity == rows[1].SingleActivity {
		t.Errorf("exploded rows share activity %q", rows[0].SingleActivity)
	}
	// sorted primarily by activity name
	if rows[0].SingleActivity != "Escacs" || rows[1].SingleActivity != "Teatre" {
		t.Errorf("activity order = %q, %q", rows[0].SingleActivity, rows[1].SingleActivity)
	}
}

func TestGetFlattenedDataSortOrder(t *testing.T) {
	ins := []model.InscriptionModel{
		multiInscription(
			student("Pol", "Vila", "6è", "Futbol"),
			student("Anna", "Roca", "1r", "Futbol"),
			student("Marta", "Serra", "1r", "Escacs"),
		),
	}

	rows := GetFlattenedData(ins, true)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	sorted := sort.SliceIsSorted(rows, func(i, j int) bool {
		if rows[i].SingleActivity != rows[j].SingleActivity {
			return rows[i].SingleActivity < rows[j].SingleActivity
		}
		if rows[i].Course != rows[j].Course {
			return rows[i].Course < rows[j].Course
		}
		return rows[i].FullName() < rows[j].FullName()
	})
	if !sorted {
		t.Error("rows not sorted by (activity, course, full name)")
	}
	if rows[0].SingleActivity != "Escacs" {
		t.Errorf("first activity = %q, want Escacs", rows[0].SingleActivity)
	}
}

func TestGetFlattenedDataNoActivitiesStillOneRow(t *testing.T) {
	ins := multiInscription(student("Nil", "Camps", "I4"))

	rows := GetFlattenedData([]model.InscriptionModel{ins}, true)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].SingleActivity != "" {
		t.Errorf("SingleActivity = %q, want empty", rows[0].SingleActivity)
	}
}

func TestGetFlattenedDataJoinedMode(t *testing.T) {
	st := student("Anna", "Puig", "2n", "Teatre", "Escacs")
	ins := multiInscription(st)

	rows := GetFlattenedData([]model.InscriptionModel{ins}, false)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (no explosion)", len(rows))
	}
	if rows[0].ActivitiesJoined != "Teatre, Escacs" {
		t.Errorf("ActivitiesJoined = %q, want %q", rows[0].ActivitiesJoined, "Teatre, Escacs")
	}
	if rows[0].SingleActivity != "" {
		t.Errorf("SingleActivity = %q, want empty in joined mode", rows[0].SingleActivity)
	}
}

func TestGroupByActivity(t *testing.T) {
	ins := []model.InscriptionModel{
		multiInscription(
			student("A", "A", "1r", "Escacs"),
			student("B", "B", "2n", "Futbol"),
			student("C", "C", "3r", "Futbol"),
		),
	}
	groups := GroupByActivity(GetFlattenedData(ins, true))
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Activity != "Escacs" || len(groups[0].Rows) != 1 {
		t.Errorf("group 0 = %q (%d rows)", groups[0].Activity, len(groups[0].Rows))
	}
	if groups[1].Activity != "Futbol" || len(groups[1].Rows) != 2 {
		t.Errorf("group 1 = %q (%d rows)", groups[1].Activity, len(groups[1].Rows))
	}
}

func TestBuildWorkbookAndPDFProduceOutput(t *testing.T) {
	ins := []model.InscriptionModel{
		multiInscription(student("Anna", "Puig", "2n", "Teatre")),
		legacyInscription("Joan", "Vila", "5è", []string{"Futbol"}, "active", false),
	}

	for _, mode := range []ExportMode{ExportModeCompact, ExportModeFull} {
		rows := GetFlattenedData(ins, mode == ExportModeCompact)
		data, err := BuildWorkbook(rows, mode)
		if err != nil {
			t.Fatalf("BuildWorkbook(%s) error = %v", mode, err)
		}
		if len(data) == 0 {
			t.Errorf("BuildWorkbook(%s) produced no bytes", mode)
		}
	}

	for _, mode := range []ExportMode{ExportModeFull, ExportModeList} {
		rows := GetFlattenedData(ins, mode == ExportModeList)
		data, err := BuildPDF(rows, mode)
		if err != nil {
			t.Fatalf("BuildPDF(%s) error = %v", mode, err)
		}
		if len(data) == 0 {
			t.Errorf("BuildPDF(%s) produced no bytes", mode)
		}
	}
}
