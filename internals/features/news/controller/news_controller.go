package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	"afa_backend/internals/features/news/dto"
	"afa_backend/internals/features/news/model"
	helper "afa_backend/internals/helpers"
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

var validateNews = validator.New()

// =============================
// 🌍 Public
// =============================

// GetPublishedNews lists published posts, newest first, paginated.
func (ctrl *NewsController) GetPublishedNews(c *fiber.Ctx) error {
	lang := helper.NormalizeLang(c.Query("lang"))
	p := helper.ParsePagination(c, "news_published_at", "desc")

	base := ctrl.DB.Model(&model.NewsModel{}).Where("news_published = ?", true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	var posts []model.NewsModel
	if err := base.
		Order("news_published_at DESC NULLS LAST").
		Limit(p.PerPage).
		Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	out := make([]dto.NewsPublicDTO, 0, len(posts))
	for _, n := range posts {
		out = append(out, dto.ToNewsPublicDTO(n, lang))
	}

	return helper.Success(c, "News fetched successfully", fiber.Map{
		"items":       out,
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": helper.TotalPages(total, p.PerPage),
	})
}

// GetPublishedNewsBySlug returns one published post by its slug.
func (ctrl *NewsController) GetPublishedNewsBySlug(c *fiber.Ctx) error {
	lang := helper.NormalizeLang(c.Query("lang"))
	slug := c.Params("slug")

	var post model.NewsModel
	if err := ctrl.DB.
		Where("news_slug = ? AND news_published = ?", slug, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "News post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news post")
	}

	return helper.Success(c, "News post fetched successfully", dto.ToNewsPublicDTO(post, lang))
}

// =============================
// 🔐 Admin
// =============================

func (ctrl *NewsController) GetAllNews(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "news_created_at", "desc", helper.AdminOpts)

	var total int64
	if err := ctrl.DB.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	var posts []model.NewsModel
	if err := ctrl.DB.
		Order("news_created_at DESC").
		Limit(p.PerPage).
		Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	out := make([]dto.NewsAdminDTO, 0, len(posts))
	for _, n := range posts {
		out = append(out, dto.ToNewsAdminDTO(n))
	}

	return helper.Success(c, "News fetched successfully", fiber.Map{
		"items":       out,
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": helper.TotalPages(total, p.PerPage),
	})
}

func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var body dto.CreateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, body.Title, "news", "news_slug", "news_deleted_at")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	post := model.NewsModel{
		NewsSlug:      slug,
		NewsTitle:     body.Title,
		NewsTitleCa:   body.TitleCa,
		NewsTitleEs:   body.TitleEs,
		NewsTitleEn:   body.TitleEn,
		NewsBody:      body.Body,
		NewsBodyCa:    body.BodyCa,
		NewsBodyEs:    body.BodyEs,
		NewsBodyEn:    body.BodyEn,
		NewsPublished: body.Published,
	}
	if body.Published {
		now := time.Now()
		post.NewsPublishedAt = &now
	}

	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create news post")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "News post created successfully", dto.ToNewsAdminDTO(post))
}

func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid news ID")
	}

	var body dto.UpdateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.NewsModel
	if err := ctrl.DB.First(&post, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "News post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news post")
	}

	if body.Title != nil {
		post.NewsTitle = *body.Title
	}
	if body.TitleCa != nil {
		post.NewsTitleCa = *body.TitleCa
	}
	if body.TitleEs != nil {
		post.NewsTitleEs = *body.TitleEs
	}
	if body.TitleEn != nil {
		post.NewsTitleEn = *body.TitleEn
	}
	if body.Body != nil {
		post.NewsBody = *body.Body
	}
	if body.BodyCa != nil {
		post.NewsBodyCa = *body.BodyCa
	}
	if body.BodyEs != nil {
		post.NewsBodyEs = *body.BodyEs
	}
	if body.BodyEn != nil {
		post.NewsBodyEn = *body.BodyEn
	}
	if body.Published != nil && *body.Published != post.NewsPublished {
		post.NewsPublished = *body.Published
		if *body.Published {
			now := time.Now()
			post.NewsPublishedAt = &now
		} else {
			post.NewsPublishedAt = nil
		}
	}

	if err := ctrl.DB.Save(&post).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update news post")
	}

	return helper.Success(c, "News post updated successfully", dto.ToNewsAdminDTO(post))
}

// UploadNewsCover stores the cover image as webp and replaces the previous one.
func (ctrl *NewsController) UploadNewsCover(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid news ID")
	}

	var post model.NewsModel
	if err := ctrl.DB.First(&post, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "News post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news post")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file is required")
	}

	publicPath, err := helper.SaveImageAsWebP(configs.UploadDir, "news", fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Failed to process image")
	}

	old := post.NewsCoverURL
	post.NewsCoverURL = &publicPath
	if err := ctrl.DB.Save(&post).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update news post")
	}
	if old != nil {
		_ = helper.DeleteUpload(configs.UploadDir, *old)
	}

	return helper.Success(c, "News cover updated successfully", dto.ToNewsAdminDTO(post))
}

func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid news ID")
	}

	res := ctrl.DB.Where("news_id = ?", id).Delete(&model.NewsModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete news post")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "News post not found")
	}

	return helper.Success(c, "News post deleted successfully", nil)
}
