package Controllers_test

import (
	"encoding/json"
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

func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	categoryCtrl := controllers.NewCategoryController(db)
	router.GET("/categories", categoryCtrl.GetAllCategories)
	router.GET("/categories/:category_name", categoryCtrl.GetHelpersByCategory)
	return router
}

func TestGetAllCategories(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupCategoryRouter(db)

	req, _ := http.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 8)

	// Urutan tetap: maid pertama
	first := data[0].(map[string]interface{})
	assert.Equal(t, "maid", first["slug"])
	assert.Equal(t, "Maid Services", first["name"])
}

func TestGetHelpersByCategory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupCategoryRouter(db)

	db.Create(&models.Helper{
		Name: "Ravi", Email: "ravi-cat@example.com", Phone: "9876543210",
		Category: "plumber", Availability: models.HelperAvailable,
		Area: "Koramangala", City: "Bangalore", Pincode: "560034", HourlyRate: 500,
	})
	db.Create(&models.Helper{
		Name: "Sunita", Email: "sunita-cat@example.com", Phone: "9876543211",
		Category: "cook", Availability: models.HelperAvailable,
		Area: "Jayanagar", City: "Bangalore", Pincode: "560041", HourlyRate: 350,
	})

	req, _ := http.NewRequest("GET", "/categories/plumber", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	helpers := data["helpers"].([]interface{})
	assert.Len(t, helpers, 1)

	helper := helpers[0].(map[string]interface{})
	assert.Equal(t, "Ravi", helper["name"])

	// Slug tidak dikenal -> 404
	req, _ = http.NewRequest("GET", "/categories/astronaut", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
