package service

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/inscriptions/model"
)

// InscriptionFlat is one row per student: the student's own fields plus the
// shared fields of the parent inscription. Rows are ephemeral, recomputed
// from the current raw set on every request.
type InscriptionFlat struct {
	InscriptionID uuid.UUID `json:"inscription_id"`
	StudentID     uuid.UUID `json:"student_id,omitempty"` // Nil for legacy rows

	Name       string   `json:"name"`
	Surname    string   `json:"surname"`
	Course     string   `json:"course"`
	Activities []string `json:"activities"`

	ParentPhone  string `json:"parent_phone"`
	ParentEmail  string `json:"parent_email"`
	GuardianName string `json:"guardian_name,omitempty"`
	GuardianDNI  string `json:"guardian_dni,omitempty"`
	AFAMember    bool   `json:"afa_member"`

	Status    model.InscriptionStatus `json:"status"`
	Suspended bool                    `json:"suspended"`

	HealthNotes     string `json:"health_notes,omitempty"`
	ImageAuthorized bool   `json:"image_authorized"`

	CreatedAt time.Time `json:"created_at"`
}

// FlattenInscriptions converts raw inscriptions into one row per student,
// preserving input order of inscriptions and, within each, student order.
// Total over its input: missing fields default, nothing errors. The row
// count equals sum(max(1, len(students))) over the input.
//
// The per-student suspended flag is carried through for multi-student
// records; legacy records carry their own flag.
func FlattenInscriptions(inscriptions []model.InscriptionModel) []InscriptionFlat {
	flat := make([]InscriptionFlat, 0, len(inscriptions))

	for _, ins := range inscriptions {
		status := ins.InscriptionStatus
		if status == "" {
			status = model.InscriptionStatusActive
		}

		if len(ins.Students) > 0 {
			for _, st := range ins.Students {
				flat = append(flat, InscriptionFlat{
					InscriptionID:   ins.InscriptionID,
					StudentID:       st.InscriptionStudentID,
					Name:            st.InscriptionStudentName,
					Surname:         st.InscriptionStudentSurname,
					Course:          st.InscriptionStudentCourse,
					Activities:      orEmpty(st.InscriptionStudentActivities),
					ParentPhone:     ins.InscriptionParentPhone,
					ParentEmail:     ins.InscriptionParentEmail,
					GuardianName:    deref(ins.InscriptionGuardianName),
					GuardianDNI:     deref(ins.InscriptionGuardianDNI),
					AFAMember:       ins.InscriptionAFAMember,
					Status:          status,
					Suspended:       st.InscriptionStudentSuspended,
					HealthNotes:     deref(st.InscriptionStudentHealthNotes),
					ImageAuthorized: st.InscriptionStudentImageAuthorized,
					CreatedAt:       ins.InscriptionCreatedAt,
				})
			}
			continue
		}

		// Legacy flat shape: exactly one row, absent fields default to empty.
		flat = append(flat, InscriptionFlat{
			InscriptionID: ins.InscriptionID,
			Name:          deref(ins.InscriptionStudentName),
			Surname:       deref(ins.InscriptionStudentSurname),
			Course:        deref(ins.InscriptionStudentCourse),
			Activities:    orEmpty(ins.InscriptionSelectedActivities),
			ParentPhone:   ins.InscriptionParentPhone,
			ParentEmail:   ins.InscriptionParentEmail,
			GuardianName:  deref(ins.InscriptionGuardianName),
			GuardianDNI:   deref(ins.InscriptionGuardianDNI),
			AFAMember:     ins.InscriptionAFAMember,
			Status:        status,
			Suspended:     ins.InscriptionSuspended,
			CreatedAt:     ins.InscriptionCreatedAt,
		})
	}

	return flat
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orEmpty(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
