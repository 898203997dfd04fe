package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/urbanmaid/urbanmaid-app/controllers"
	"github.com/urbanmaid/urbanmaid-app/models"
	"github.com/urbanmaid/urbanmaid-app/utils"
)

func setupHelperRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	helperCtrl := controllers.NewHelperController(db)
	router.POST("/helpers/register", helperCtrl.RegisterHelper)
	router.GET("/helpers/:helper_id", helperCtrl.GetHelperProfile)
	return router
}

func TestRegisterHelper(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupHelperRouter(db)

	payload := map[string]string{
		"name":        "Sunita Devi",
		"email":       "Sunita@Example.com",
		"phone":       "+91 98765-43210",
		"category":    "cook",
		"skills":      "north indian, baking , ",
		"experience":  "5",
		"area":        "Jayanagar",
		"city":        "Bangalore",
		"pincode":     "560041",
		"hourly_rate": "350",
		"description": "Home-style cooking",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/helpers/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var helper models.Helper
	db.Where("email = ?", "sunita@example.com").First(&helper)
	// Email lowercase, phone hanya digit, skills dinormalisasi
	assert.Equal(t, "sunita@example.com", helper.Email)
	assert.Equal(t, "919876543210", helper.Phone)
	assert.Equal(t, "north indian,baking", helper.Skills)
	assert.Equal(t, models.HelperAvailable, helper.Availability)
	assert.Equal(t, float64(350), helper.HourlyRate)
	assert.Equal(t, models.DefaultHelperImage, helper.ImageURL)
}

func TestRegisterHelperDuplicateEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupHelperRouter(db)

	payload := map[string]string{
		"name":        "Sunita Devi",
		"email":       "dup-helper@example.com",
		"phone":       "9876543210",
		"category":    "cook",
		"area":        "Jayanagar",
		"city":        "Bangalore",
		"pincode":     "560041",
		"hourly_rate": "350",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/helpers/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("POST", "/helpers/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Helper with this email already exists", response["message"])
}

func TestRegisterHelperUnknownCategory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupHelperRouter(db)

	payload := map[string]string{
		"name":        "Someone",
		"email":       "someone@example.com",
		"phone":       "9876543210",
		"category":    "astronaut",
		"area":        "Jayanagar",
		"city":        "Bangalore",
		"pincode":     "560041",
		"hourly_rate": "350",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/helpers/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unknown service category", response["message"])
}

func TestGetHelperProfile(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupHelperRouter(db)

	helper := models.Helper{
		Name: "Ravi Kumar", Email: "profile@example.com", Phone: "9876543210",
		Category: "plumber", Availability: models.HelperAvailable,
		Area: "Koramangala", City: "Bangalore", Pincode: "560034", HourlyRate: 500,
	}
	db.Create(&helper)

	req, _ := http.NewRequest("GET", fmt.Sprintf("/helpers/%d", helper.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Ravi Kumar", data["name"])

	// Helper tidak ada -> 404
	req, _ = http.NewRequest("GET", "/helpers/9999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
