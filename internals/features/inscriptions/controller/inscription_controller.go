package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/inscriptions/dto"
	"afa_backend/internals/features/inscriptions/model"
	"afa_backend/internals/features/inscriptions/service"
	helper "afa_backend/internals/helpers"
)

var validateInscription = validator.New()

type InscriptionController struct {
	DB *gorm.DB
}

func NewInscriptionController(db *gorm.DB) *InscriptionController {
	return &InscriptionController{DB: db}
}

// =============================
// ➕ Create Inscription (public form)
// =============================
func (ctrl *InscriptionController) CreateInscription(c *fiber.Ctx) error {
	var body dto.CreateInscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInscription.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.HasStudents() == body.HasLegacyStudent() {
		return fiber.NewError(fiber.StatusBadRequest, "Provide either students or the flat student fields, not both")
	}

	ins := model.InscriptionModel{
		InscriptionParentPhone:  body.ParentPhone,
		InscriptionParentEmail:  body.ParentEmail,
		InscriptionGuardianName: body.GuardianName,
		InscriptionGuardianDNI:  body.GuardianDNI,
		InscriptionAFAMember:    body.AFAMember,
		InscriptionStatus:       model.InscriptionStatusActive,
	}

	if body.HasStudents() {
		for i, st := range body.Students {
			ins.Students = append(ins.Students, model.InscriptionStudentModel{
				InscriptionStudentName:            st.Name,
				InscriptionStudentSurname:         st.Surname,
				InscriptionStudentCourse:          st.Course,
				InscriptionStudentActivities:      st.Activities,
				InscriptionStudentHealthNotes:     st.HealthNotes,
				InscriptionStudentImageAuthorized: st.ImageAuthorized,
				InscriptionStudentPosition:        i,
			})
		}
	} else {
		ins.InscriptionStudentName = body.StudentName
		ins.InscriptionStudentSurname = body.StudentSurname
		ins.InscriptionStudentCourse = body.StudentCourse
		ins.InscriptionSelectedActivities = body.SelectedActivities
	}

	if err := ctrl.DB.Create(&ins).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create inscription")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Inscription created", dto.ToInscriptionDTO(ins))
}

// =============================
// 📄 Get All Inscriptions (flattened + filtered)
// =============================
func (ctrl *InscriptionController) GetAllInscriptions(c *fiber.Ctx) error {
	var raw []model.InscriptionModel
	err := ctrl.DB.
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("inscription_student_position ASC")
		}).
		Order("inscription_created_at ASC").
		Find(&raw).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve inscriptions")
	}

	filters := service.InscriptionFilters{
		Course:   c.Query("course"),
		Activity: c.Query("activity"),
		Status:   c.Query("status", service.StatusFilterAll),
		Search:   c.Query("search"),
	}

	rows := service.FilterInscriptions(service.FlattenInscriptions(raw), filters)

	return helper.Success(c, "OK", fiber.Map{
		"rows":  rows,
		"total": len(rows),
	})
}

// =============================
// 🔍 Get Inscription By ID
// =============================
func (ctrl *InscriptionController) GetInscriptionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var ins model.InscriptionModel
	err := ctrl.DB.
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("inscription_student_position ASC")
		}).
		First(&ins, "inscription_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inscription not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve inscription")
	}

	return helper.Success(c, "OK", dto.ToInscriptionDTO(ins))
}

// =============================
// 🔄 Update Inscription (partial)
// =============================
func (ctrl *InscriptionController) UpdateInscription(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateInscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInscription.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ins model.InscriptionModel
	if err := ctrl.DB.First(&ins, "inscription_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inscription not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve inscription")
	}

	if body.ParentPhone != nil {
		ins.InscriptionParentPhone = *body.ParentPhone
	}
	if body.ParentEmail != nil {
		ins.InscriptionParentEmail = *body.ParentEmail
	}
	if body.GuardianName != nil {
		ins.InscriptionGuardianName = body.GuardianName
	}
	if body.GuardianDNI != nil {
		ins.InscriptionGuardianDNI = body.GuardianDNI
	}
	if body.AFAMember != nil {
		ins.InscriptionAFAMember = *body.AFAMember
	}
	if body.StudentName != nil {
		ins.InscriptionStudentName = body.StudentName
	}
	if body.StudentSurname != nil {
		ins.InscriptionStudentSurname = body.StudentSurname
	}
	if body.StudentCourse != nil {
		ins.InscriptionStudentCourse = body.StudentCourse
	}
	if body.SelectedActivities != nil {
		ins.InscriptionSelectedActivities = body.SelectedActivities
	}
	if body.Suspended != nil {
		ins.InscriptionSuspended = *body.Suspended
	}

	if err := ctrl.DB.Save(&ins).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update inscription")
	}

	return helper.Success(c, "Inscription updated", dto.ToInscriptionDTO(ins))
}

// =============================
// 🔄 Update Status (active / baja / pending)
// =============================
func (ctrl *InscriptionController) UpdateInscriptionStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInscription.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.InscriptionModel{}).
		Where("inscription_id = ?", id).
		Update("inscription_status", body.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Inscription not found")
	}

	return helper.Success(c, "Status updated", fiber.Map{"status": body.Status})
}

// =============================
// ⏸️ Suspend / resume one student
// =============================
func (ctrl *InscriptionController) SuspendStudent(c *fiber.Ctx) error {
	insID := c.Params("id")
	studentID := c.Params("student_id")

	var body dto.SuspendStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.DB.Model(&model.InscriptionStudentModel{}).
		Where("inscription_student_id = ? AND inscription_student_inscription_id = ?", studentID, insID).
		Update("inscription_student_suspended", body.Suspended)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Student updated", fiber.Map{"suspended": body.Suspended})
}

// =============================
// 🗑️ Delete Inscription (permanent)
// =============================
func (ctrl *InscriptionController) DeleteInscription(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inscription_student_inscription_id = ?", id).
			Delete(&model.InscriptionStudentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.InscriptionModel{}, "inscription_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inscription not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete inscription")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
