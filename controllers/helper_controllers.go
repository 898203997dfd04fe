package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urbanmaid/urbanmaid-app/models"
	"github.com/urbanmaid/urbanmaid-app/utils"
	"gorm.io/gorm"
)

type HelperController struct {
	DB *gorm.DB
}

func NewHelperController(db *gorm.DB) *HelperController {
	return &HelperController{DB: db}
}

var nonDigits = regexp.MustCompile(`\D`)

// RegisterHelper -> pendaftaran helper baru, langsung available
func (hc *HelperController) RegisterHelper(c *gin.Context) {
	type request struct {
		Name        string `json:"name" form:"name" binding:"required"`
		Email       string `json:"email" form:"email" binding:"required,email"`
		Phone       string `json:"phone" form:"phone" binding:"required"`
		Category    string `json:"category" form:"category" binding:"required"`
		Skills      string `json:"skills" form:"skills"`
		Experience  string `json:"experience" form:"experience"`
		Area        string `json:"area" form:"area" binding:"required"`
		City        string `json:"city" form:"city" binding:"required"`
		Pincode     string `json:"pincode" form:"pincode" binding:"required"`
		HourlyRate  string `json:"hourly_rate" form:"hourly_rate" binding:"required"`
		Description string `json:"description" form:"description"`
	}
	var req request
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.IsValidCategory(req.Category) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Unknown service category"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := nonDigits.ReplaceAllString(req.Phone, "")

	var existing models.Helper
	if err := hc.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Helper with this email already exists"))
		return
	}

	hourlyRate, err := strconv.ParseFloat(req.HourlyRate, 64)
	if err != nil || hourlyRate < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Hourly rate must be a non-negative number"))
		return
	}

	experience, _ := strconv.Atoi(req.Experience)
	if experience < 0 {
		experience = 0
	}

	// Skills dikirim sebagai daftar dipisah koma; simpan ternormalisasi
	var skills []string
	for _, s := range strings.Split(req.Skills, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	helper := models.Helper{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        phone,
		Category:     req.Category,
		Skills:       strings.Join(skills, ","),
		Experience:   experience,
		Availability: models.HelperAvailable,
		Area:         strings.TrimSpace(req.Area),
		City:         strings.TrimSpace(req.City),
		Pincode:      strings.TrimSpace(req.Pincode),
		ImageURL:     models.DefaultHelperImage,
		HourlyRate:   hourlyRate,
		Description:  strings.TrimSpace(req.Description),
	}

	if err := hc.DB.Create(&helper).Error; err != nil {
		utils.ErrorLogger.Printf("Helper registration error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New helper registered: %s (category=%s, rate=%.2f)", helper.Email, helper.Category, helper.HourlyRate)
	utils.RespondJSON(c, http.StatusCreated, "Helper registration successful! You are now available for bookings.", helper)
}

// GetHelperProfile -> detail satu helper
func (hc *HelperController) GetHelperProfile(c *gin.Context) {
	helperID := c.Param("helper_id")

	var helper models.Helper
	if err := hc.DB.First(&helper, "id = ?", helperID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Helper not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Helper profile", helper)
}
