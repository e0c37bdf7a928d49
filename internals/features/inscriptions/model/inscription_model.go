package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// --- ENUM inscription_status -------------------------------------------------
type InscriptionStatus string

const (
	InscriptionStatusActive  InscriptionStatus = "active"
	InscriptionStatusBaja    InscriptionStatus = "baja"
	InscriptionStatusPending InscriptionStatus = "pending"
)

// Course codes used by the school: infantil I3–I5, primària 1r–6è.
var CourseCodes = []string{"I3", "I4", "I5", "1r", "2n", "3r", "4t", "5è", "6è"}

// --- MODEL inscriptions ------------------------------------------------------
// One registration submission. Two stored shapes share this table: the legacy
// flat-student columns (one student inline) and the newer per-student child
// rows. Exactly one of the two is populated per record.
type InscriptionModel struct {
	// PK
	InscriptionID uuid.UUID `json:"inscription_id" gorm:"column:inscription_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Guardian contact
	InscriptionParentPhone  string  `json:"inscription_parent_phone" gorm:"column:inscription_parent_phone;type:varchar(30);not null"`
	InscriptionParentEmail  string  `json:"inscription_parent_email" gorm:"column:inscription_parent_email;type:varchar(120);not null;index:idx_inscriptions_email"`
	InscriptionGuardianName *string `json:"inscription_guardian_name,omitempty" gorm:"column:inscription_guardian_name;type:varchar(120)"`
	InscriptionGuardianDNI  *string `json:"inscription_guardian_dni,omitempty" gorm:"column:inscription_guardian_dni;type:varchar(20)"`

	// Membership + lifecycle
	InscriptionAFAMember bool              `json:"inscription_afa_member" gorm:"column:inscription_afa_member;type:boolean;not null;default:false"`
	InscriptionStatus    InscriptionStatus `json:"inscription_status" gorm:"column:inscription_status;type:varchar(20);not null;default:'active';index:idx_inscriptions_status"`

	// Legacy flat shape (empty when Students is used)
	InscriptionStudentName        *string        `json:"inscription_student_name,omitempty" gorm:"column:inscription_student_name;type:varchar(80)"`
	InscriptionStudentSurname     *string        `json:"inscription_student_surname,omitempty" gorm:"column:inscription_student_surname;type:varchar(120)"`
	InscriptionStudentCourse      *string        `json:"inscription_student_course,omitempty" gorm:"column:inscription_student_course;type:varchar(5)"`
	InscriptionSelectedActivities pq.StringArray `json:"inscription_selected_activities,omitempty" gorm:"column:inscription_selected_activities;type:text[]"`
	InscriptionSuspended          bool           `json:"inscription_suspended" gorm:"column:inscription_suspended;type:boolean;not null;default:false"`

	// Timestamps (no soft delete: admin deletion is permanent removal)
	InscriptionCreatedAt time.Time `json:"inscription_created_at" gorm:"column:inscription_created_at;type:timestamptz;not null;autoCreateTime"`
	InscriptionUpdatedAt time.Time `json:"inscription_updated_at" gorm:"column:inscription_updated_at;type:timestamptz;not null;autoUpdateTime"`

	// Multi-student shape
	Students []InscriptionStudentModel `json:"students,omitempty" gorm:"foreignKey:InscriptionStudentInscriptionID;references:InscriptionID;constraint:OnDelete:CASCADE"`
}

func (InscriptionModel) TableName() string { return "inscriptions" }

// --- MODEL inscription_students ----------------------------------------------
type InscriptionStudentModel struct {
	InscriptionStudentID            uuid.UUID `json:"inscription_student_id" gorm:"column:inscription_student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	InscriptionStudentInscriptionID uuid.UUID `json:"inscription_student_inscription_id" gorm:"column:inscription_student_inscription_id;type:uuid;not null;index:idx_inscription_students_parent"`

	InscriptionStudentName       string         `json:"inscription_student_name" gorm:"column:inscription_student_name;type:varchar(80);not null"`
	InscriptionStudentSurname    string         `json:"inscription_student_surname" gorm:"column:inscription_student_surname;type:varchar(120);not null"`
	InscriptionStudentCourse     string         `json:"inscription_student_course" gorm:"column:inscription_student_course;type:varchar(5);not null"`
	InscriptionStudentActivities pq.StringArray `json:"inscription_student_activities" gorm:"column:inscription_student_activities;type:text[]"`
	InscriptionStudentSuspended  bool           `json:"inscription_student_suspended" gorm:"column:inscription_student_suspended;type:boolean;not null;default:false"`

	// Health / authorization (full export schema)
	InscriptionStudentHealthNotes     *string `json:"inscription_student_health_notes,omitempty" gorm:"column:inscription_student_health_notes;type:text"`
	InscriptionStudentImageAuthorized bool    `json:"inscription_student_image_authorized" gorm:"column:inscription_student_image_authorized;type:boolean;not null;default:false"`

	// Keeps submission order stable across reads
	InscriptionStudentPosition int `json:"inscription_student_position" gorm:"column:inscription_student_position;type:int;not null;default:0;index:idx_inscription_students_pos"`

	InscriptionStudentCreatedAt time.Time `json:"inscription_student_created_at" gorm:"column:inscription_student_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (InscriptionStudentModel) TableName() string { return "inscription_students" }
