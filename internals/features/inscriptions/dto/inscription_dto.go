package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/inscriptions/model"
)

// ============================
// Requests
// ============================

type StudentInput struct {
	Name            string   `json:"name" validate:"required,max=80"`
	Surname         string   `json:"surname" validate:"required,max=120"`
	Course          string   `json:"course" validate:"required,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	Activities      []string `json:"activities" validate:"omitempty,dive,max=120"`
	HealthNotes     *string  `json:"health_notes,omitempty" validate:"omitempty,max=2000"`
	ImageAuthorized bool     `json:"image_authorized"`
}

// CreateInscriptionRequest accepts either the multi-student shape or the
// legacy flat-student shape. Exactly one must be populated.
type CreateInscriptionRequest struct {
	ParentPhone  string  `json:"parent_phone" validate:"required,max=30"`
	ParentEmail  string  `json:"parent_email" validate:"required,email,max=120"`
	GuardianName *string `json:"guardian_name,omitempty" validate:"omitempty,max=120"`
	GuardianDNI  *string `json:"guardian_dni,omitempty" validate:"omitempty,max=20"`
	AFAMember    bool    `json:"afa_member"`

	Students []StudentInput `json:"students,omitempty" validate:"omitempty,dive"`

	// Legacy flat shape
	StudentName        *string  `json:"student_name,omitempty" validate:"omitempty,max=80"`
	StudentSurname     *string  `json:"student_surname,omitempty" validate:"omitempty,max=120"`
	StudentCourse      *string  `json:"student_course,omitempty" validate:"omitempty,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	SelectedActivities []string `json:"selected_activities,omitempty" validate:"omitempty,dive,max=120"`
}

// HasStudents reports whether the multi-student shape was used.
func (r CreateInscriptionRequest) HasStudents() bool { return len(r.Students) > 0 }

// HasLegacyStudent reports whether the legacy flat shape was used.
func (r CreateInscriptionRequest) HasLegacyStudent() bool {
	return r.StudentName != nil || r.StudentSurname != nil || r.StudentCourse != nil || len(r.SelectedActivities) > 0
}

// UpdateInscriptionRequest is a partial update; nil fields stay untouched.
type UpdateInscriptionRequest struct {
	ParentPhone  *string `json:"parent_phone,omitempty" validate:"omitempty,max=30"`
	ParentEmail  *string `json:"parent_email,omitempty" validate:"omitempty,email,max=120"`
	GuardianName *string `json:"guardian_name,omitempty" validate:"omitempty,max=120"`
	GuardianDNI  *string `json:"guardian_dni,omitempty" validate:"omitempty,max=20"`
	AFAMember    *bool   `json:"afa_member,omitempty"`

	StudentName        *string  `json:"student_name,omitempty" validate:"omitempty,max=80"`
	StudentSurname     *string  `json:"student_surname,omitempty" validate:"omitempty,max=120"`
	StudentCourse      *string  `json:"student_course,omitempty" validate:"omitempty,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	SelectedActivities []string `json:"selected_activities,omitempty" validate:"omitempty,dive,max=120"`
	Suspended          *bool    `json:"suspended,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active baja pending"`
}

type SuspendStudentRequest struct {
	Suspended bool `json:"suspended"`
}

// ============================
// Responses
// ============================

type StudentDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Course          string    `json:"course"`
	Activities      []string  `json:"activities"`
	Suspended       bool      `json:"suspended"`
	HealthNotes     *string   `json:"health_notes,omitempty"`
	ImageAuthorized bool      `json:"image_authorized"`
}

type InscriptionDTO struct {
	ID           uuid.UUID               `json:"id"`
	ParentPhone  string                  `json:"parent_phone"`
	ParentEmail  string                  `json:"parent_email"`
	GuardianName *string                 `json:"guardian_name,omitempty"`
	GuardianDNI  *string                 `json:"guardian_dni,omitempty"`
	AFAMember    bool                    `json:"afa_member"`
	Status       model.InscriptionStatus `json:"status"`

	Students []StudentDTO `json:"students,omitempty"`

	StudentName        *string  `json:"student_name,omitempty"`
	StudentSurname     *string  `json:"student_surname,omitempty"`
	StudentCourse      *string  `json:"student_course,omitempty"`
	SelectedActivities []string `json:"selected_activities,omitempty"`
	Suspended          bool     `json:"suspended"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToInscriptionDTO(m model.InscriptionModel) InscriptionDTO {
	out := InscriptionDTO{
		ID:                 m.InscriptionID,
		ParentPhone:        m.InscriptionParentPhone,
		ParentEmail:        m.InscriptionParentEmail,
		GuardianName:       m.InscriptionGuardianName,
		GuardianDNI:        m.InscriptionGuardianDNI,
		AFAMember:          m.InscriptionAFAMember,
		Status:             m.InscriptionStatus,
		StudentName:        m.InscriptionStudentName,
		StudentSurname:     m.InscriptionStudentSurname,
		StudentCourse:      m.InscriptionStudentCourse,
		SelectedActivities: m.InscriptionSelectedActivities,
		Suspended:          m.InscriptionSuspended,
		CreatedAt:          m.InscriptionCreatedAt,
		UpdatedAt:          m.InscriptionUpdatedAt,
	}
	for _, st := range m.Students {
		out.Students = append(out.Students, StudentDTO{
			ID:              st.InscriptionStudentID,
			Name:            st.InscriptionStudentName,
			Surname:         st.InscriptionStudentSurname,
			Course:          st.InscriptionStudentCourse,
			Activities:      st.InscriptionStudentActivities,
			Suspended:       st.InscriptionStudentSuspended,
			HealthNotes:     st.InscriptionStudentHealthNotes,
			ImageAuthorized: st.InscriptionStudentImageAuthorized,
		})
	}
	return out
}
