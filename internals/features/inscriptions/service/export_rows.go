package service

import (
	"sort"
	"strings"

	"afa_backend/internals/features/inscriptions/model"
)

// ExportRow is the tabular shape fed to the spreadsheet/PDF renderers.
// Exactly one of SingleActivity / ActivitiesJoined is meaningful, depending
// on the mode GetFlattenedData was called with.
type ExportRow struct {
	InscriptionFlat

	SingleActivity   string `json:"single_activity,omitempty"`
	ActivitiesJoined string `json:"activities_joined,omitempty"`
}

// GetFlattenedData reshapes raw inscriptions for export.
//
// With shouldSort=true each student row is exploded into one row per
// (student, activity) pair and the result is sorted by activity, course and
// full name, which lets the renderers group per activity. A student with no
// activities still yields one row with an empty SingleActivity.
//
// With shouldSort=false activities are joined into a single comma-delimited
// display string and input order is preserved.
func GetFlattenedData(inscriptions []model.InscriptionModel, shouldSort bool) []ExportRow {
	flat := FlattenInscriptions(inscriptions)

	if !shouldSort {
		rows := make([]ExportRow, 0, len(flat))
		for _, f := range flat {
			rows = append(rows, ExportRow{
				InscriptionFlat:  f,
				ActivitiesJoined: strings.Join(f.Activities, ", "),
			})
		}
		return rows
	}

	rows := make([]ExportRow, 0, len(flat))
	for _, f := range flat {
		if len(f.Activities) == 0 {
			rows = append(rows, ExportRow{InscriptionFlat: f})
			continue
		}
		for _, act := range f.Activities {
			rows = append(rows, ExportRow{InscriptionFlat: f, SingleActivity: act})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := foldCompare(rows[i].SingleActivity, rows[j].SingleActivity); c != 0 {
			return c < 0
		}
		if c := foldCompare(rows[i].Course, rows[j].Course); c != 0 {
			return c < 0
		}
		return foldCompare(rows[i].FullName(), rows[j].FullName()) < 0
	})

	return rows
}

func (r InscriptionFlat) FullName() string {
	return strings.TrimSpace(r.Name + " " + r.Surname)
}

// GroupByActivity splits exploded rows into per-activity groups, keeping the
// sorted order produced by GetFlattenedData. Rows without an activity come
// first under the empty key.
func GroupByActivity(rows []ExportRow) []ActivityGroup {
	var groups []ActivityGroup
	for _, r := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Activity != r.SingleActivity {
			groups = append(groups, ActivityGroup{Activity: r.SingleActivity})
		}
		g := &groups[len(groups)-1]
		g.Rows = append(g.Rows, r)
	}
	return groups
}

type ActivityGroup struct {
	Activity string
	Rows     []ExportRow
}

// Case-folded comparison. Course codes and names in this dataset are
// ASCII plus Catalan accents, where byte order after lower-casing matches
// the display ordering.
func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
