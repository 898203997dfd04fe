package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urbanmaid/urbanmaid-app/models"
	"github.com/urbanmaid/urbanmaid-app/utils"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories -> daftar kategori statis
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All categories", models.AllCategories())
}

// GetHelpersByCategory -> semua helper dalam satu kategori
func (cc *CategoryController) GetHelpersByCategory(c *gin.Context) {
	slug := c.Param("category_name")

	category, ok := models.CategoryBySlug(slug)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("Category not found"))
		return
	}

	var helpers []models.Helper
	if err := cc.DB.Where("category = ?", slug).Find(&helpers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, category.Name, gin.H{
		"category": category,
		"helpers":  helpers,
	})
}

// GetCategoryHelper -> detail satu helper dalam konteks kategorinya
func (cc *CategoryController) GetCategoryHelper(c *gin.Context) {
	slug := c.Param("category_name")

	category, ok := models.CategoryBySlug(slug)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("Category not found"))
		return
	}

	var helper models.Helper
	if err := cc.DB.First(&helper, "id = ?", c.Param("helper_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Helper not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, helper.Name+" - "+category.Name, gin.H{
		"category": category,
		"helper":   helper,
	})
}
