package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	"afa_backend/internals/features/shop/dto"
	"afa_backend/internals/features/shop/model"
	helper "afa_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var validateShop = validator.New()

// =============================
// 🌍 Public
// =============================

// GetCatalog lists active products with content resolved to ?lang.
func (ctrl *ProductController) GetCatalog(c *fiber.Ctx) error {
	lang := helper.NormalizeLang(c.Query("lang"))

	var products []model.ProductModel
	if err := ctrl.DB.
		Where("product_active = ?", true).
		Order("product_name ASC").
		Find(&products).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	out := make([]dto.ProductPublicDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductPublicDTO(p, lang))
	}
	return helper.Success(c, "Products fetched successfully", out)
}

// =============================
// 🔐 Admin
// =============================

func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.ProductModel
	if err := ctrl.DB.Order("product_name ASC").Find(&products).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	out := make([]dto.ProductAdminDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductAdminDTO(p))
	}
	return helper.Success(c, "Products fetched successfully", out)
}

func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateShop.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	product := model.ProductModel{
		ProductName:          body.Name,
		ProductNameCa:        body.NameCa,
		ProductNameEs:        body.NameEs,
		ProductNameEn:        body.NameEn,
		ProductDescription:   body.Description,
		ProductDescriptionCa: body.DescriptionCa,
		ProductDescriptionEs: body.DescriptionEs,
		ProductDescriptionEn: body.DescriptionEn,
		ProductPriceCents:    body.PriceCents,
		ProductStock:         body.Stock,
		ProductSizes:         body.Sizes,
		ProductActive:        true,
	}
	if body.Active != nil {
		product.ProductActive = *body.Active
	}

	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Product created successfully", dto.ToProductAdminDTO(product))
}

func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateShop.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	if body.Name != nil {
		product.ProductName = *body.Name
	}
	if body.NameCa != nil {
		product.ProductNameCa = *body.NameCa
	}
	if body.NameEs != nil {
		product.ProductNameEs = *body.NameEs
	}
	if body.NameEn != nil {
		product.ProductNameEn = *body.NameEn
	}
	if body.Description != nil {
		product.ProductDescription = *body.Description
	}
	if body.DescriptionCa != nil {
		product.ProductDescriptionCa = *body.DescriptionCa
	}
	if body.DescriptionEs != nil {
		product.ProductDescriptionEs = *body.DescriptionEs
	}
	if body.DescriptionEn != nil {
		product.ProductDescriptionEn = *body.DescriptionEn
	}
	if body.PriceCents != nil {
		product.ProductPriceCents = *body.PriceCents
	}
	if body.Stock != nil {
		product.ProductStock = *body.Stock
	}
	if body.Sizes != nil {
		product.ProductSizes = body.Sizes
	}
	if body.Active != nil {
		product.ProductActive = *body.Active
	}

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	return helper.Success(c, "Product updated successfully", dto.ToProductAdminDTO(product))
}

// UploadProductImage stores the file as webp and replaces the previous one.
func (ctrl *ProductController) UploadProductImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file is required")
	}

	publicPath, err := helper.SaveImageAsWebP(configs.UploadDir, "products", fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Failed to process image")
	}

	old := product.ProductImageURL
	product.ProductImageURL = &publicPath
	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update product")
	}
	if old != nil {
		_ = helper.DeleteUpload(configs.UploadDir, *old)
	}

	return helper.Success(c, "Product image updated successfully", dto.ToProductAdminDTO(product))
}

func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	res := ctrl.DB.Where("product_id = ?", id).Delete(&model.ProductModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete product")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Product not found")
	}

	return helper.Success(c, "Product deleted successfully", nil)
}
