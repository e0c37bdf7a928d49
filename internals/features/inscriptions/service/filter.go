package service

import (
	"strings"

	"afa_backend/internals/features/inscriptions/model"
)

// Status filter values accepted from the UI.
const (
	StatusFilterAll    = "all"
	StatusFilterActive = "active"
	StatusFilterBaja   = "baja"
)

// InscriptionFilters narrows flat rows. Empty course/activity/search match
// everything; predicates combine with AND.
type InscriptionFilters struct {
	Course   string `json:"course"`
	Activity string `json:"activity"`
	Status   string `json:"status"` // all | active | baja
	Search   string `json:"search"`
}

// FilterInscriptions returns the subset of rows matching every active
// predicate. "active" is defined as "not baja": pending rows land in the
// active bucket, matching the dashboard's historical behavior.
func FilterInscriptions(rows []InscriptionFlat, f InscriptionFilters) []InscriptionFlat {
	out := make([]InscriptionFlat, 0, len(rows))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, r := range rows {
		if f.Course != "" && r.Course != f.Course {
			continue
		}
		if f.Activity != "" && !containsActivity(r.Activities, f.Activity) {
			continue
		}
		if !matchStatus(r.Status, f.Status) {
			continue
		}
		if search != "" && !matchSearch(r, search) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func containsActivity(activities []string, want string) bool {
	for _, a := range activities {
		if a == want {
			return true
		}
	}
	return false
}

func matchStatus(status model.InscriptionStatus, filter string) bool {
	switch filter {
	case "", StatusFilterAll:
		return true
	case StatusFilterBaja:
		return status == model.InscriptionStatusBaja
	default:
		return status != model.InscriptionStatusBaja
	}
}

func matchSearch(r InscriptionFlat, search string) bool {
	return strings.Contains(strings.ToLower(r.Name), search) ||
		strings.Contains(strings.ToLower(r.Surname), search) ||
		strings.Contains(strings.ToLower(r.ParentEmail), search)
}
