package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/urbanmaid/urbanmaid-app/models"
	"github.com/urbanmaid/urbanmaid-app/utils"
	"gorm.io/gorm"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// bookingForm menampung payload form booking apa adanya; semua field string
// supaya input asli user bisa di-echo kembali saat validasi gagal.
type bookingForm struct {
	HelperID     string `json:"helper_id" form:"helper_id"`
	BookingDate  string `json:"booking_date" form:"booking_date"`
	StartHour    string `json:"start_hour" form:"start_hour"`
	StartMinute  string `json:"start_minute" form:"start_minute"`
	Meridiem     string `json:"meridiem" form:"meridiem"`
	Duration     string `json:"duration" form:"duration"`
	Street       string `json:"street" form:"street"`
	Area         string `json:"area" form:"area"`
	City         string `json:"city" form:"city"`
	Pincode      string `json:"pincode" form:"pincode"`
	Instructions string `json:"instructions" form:"instructions"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// formError mengembalikan 400 dengan pesan validasi plus input asli user,
// supaya client bisa merender ulang form tanpa kehilangan isian.
func (bc *BookingController) formError(c *gin.Context, form bookingForm, msg string) {
	var helper *models.Helper
	if form.HelperID != "" {
		var h models.Helper
		if err := bc.DB.First(&h, "id = ?", form.HelperID).Error; err == nil {
			helper = &h
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": msg,
		"data": gin.H{
			"helper":    helper,
			"form_data": form,
		},
	})
}

// redirectError dipakai untuk kegagalan yang di web UI berupa redirect +
// flash message (helper hilang, sudah busy, bukan milik user, dst).
func redirectError(c *gin.Context, code int, msg, redirect string) {
	c.JSON(code, gin.H{
		"status":   false,
		"message":  msg,
		"redirect": redirect,
	})
}

// GetBookingForm -> data untuk form booking satu helper
func (bc *BookingController) GetBookingForm(c *gin.Context) {
	helperID := c.Param("helper_id")

	var helper models.Helper
	if err := bc.DB.First(&helper, "id = ?", helperID).Error; err != nil {
		utils.ErrorLogger.Printf("Booking form: helper %s not found", helperID)
		redirectError(c, http.StatusNotFound, "Helper not found", "/categories")
		return
	}

	if helper.Availability != models.HelperAvailable {
		redirectError(c, http.StatusConflict, "This helper is currently not available", "/categories/"+helper.Category)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking form data", gin.H{
		"helper":    helper,
		"form_data": bookingForm{},
	})
}

// CreateBooking -> validasi berurutan, lalu insert booking + set helper busy
// dalam satu transaksi.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		redirectError(c, http.StatusUnauthorized, "Please log in first", "/login")
		return
	}

	var form bookingForm
	if err := c.ShouldBind(&form); err != nil {
		bc.formError(c, form, "Please fill in all required fields including date, time, and duration")
		return
	}

	// Urutan validasi mengikuti form: field wajib, alamat, waktu, pincode.
	// Kegagalan pertama yang menang.
	if form.HelperID == "" || form.BookingDate == "" || form.StartHour == "" ||
		form.StartMinute == "" || form.Meridiem == "" || form.Duration == "" {
		bc.formError(c, form, "Please fill in all required fields including date, time, and duration")
		return
	}

	if strings.TrimSpace(form.Street) == "" || strings.TrimSpace(form.City) == "" {
		bc.formError(c, form, "Please provide at least street address and city")
		return
	}

	hour, errH := strconv.Atoi(form.StartHour)
	minute, errM := strconv.Atoi(form.StartMinute)
	meridiem := strings.ToUpper(strings.TrimSpace(form.Meridiem))
	if errH != nil || errM != nil || hour < 1 || hour > 12 || minute < 0 || minute > 59 ||
		(meridiem != "AM" && meridiem != "PM") {
		bc.formError(c, form, "Please enter a valid time (1-12 hours, 0-59 minutes)")
		return
	}

	if form.Pincode != "" && !pincodePattern.MatchString(form.Pincode) {
		bc.formError(c, form, "Pincode must be exactly 6 digits")
		return
	}

	duration, errD := strconv.Atoi(form.Duration)
	if errD != nil || duration <= 0 {
		bc.formError(c, form, "Please enter a valid duration in hours")
		return
	}

	bookingDate, errDate := time.Parse("2006-01-02", form.BookingDate)
	if errDate != nil {
		bc.formError(c, form, "Please enter a valid booking date")
		return
	}

	var helper models.Helper
	if err := bc.DB.First(&helper, "id = ?", form.HelperID).Error; err != nil {
		utils.ErrorLogger.Printf("Create booking: helper %s not found", form.HelperID)
		redirectError(c, http.StatusNotFound, "Helper not found", "/categories")
		return
	}

	if helper.Availability != models.HelperAvailable {
		utils.InfoLogger.Printf("Create booking rejected: helper %d is %s", helper.ID, helper.Availability)
		redirectError(c, http.StatusConflict, "This helper is currently not available", "/categories/"+helper.Category)
		return
	}

	startTime24 := utils.To24Hour(hour, minute, meridiem)
	displayTime := utils.FormatDisplayTime(hour, minute, meridiem)

	// TotalAmount dibekukan di sini; perubahan tarif helper setelahnya
	// tidak mengubah booking yang sudah ada.
	totalAmount := helper.HourlyRate * float64(duration)

	area := strings.TrimSpace(form.Area)
	if area == "" {
		area = models.NotSpecified
	}
	pincode := strings.TrimSpace(form.Pincode)
	if pincode == "" {
		pincode = models.NotSpecified
	}

	booking := models.Booking{
		Reference:           uuid.NewString(),
		UserID:              userID,
		HelperID:            helper.ID,
		BookingDate:         bookingDate,
		StartTime:           displayTime,
		StartTime24:         startTime24,
		Duration:            duration,
		TotalAmount:         totalAmount,
		Street:              strings.TrimSpace(form.Street),
		Area:                area,
		City:                strings.TrimSpace(form.City),
		Pincode:             pincode,
		SpecialInstructions: strings.TrimSpace(form.Instructions),
		Status:              models.BookingConfirmed,
		PaymentStatus:       models.PaymentPending,
	}

	// Insert booking dan flip availability dalam satu transaksi, supaya tidak
	// ada booking confirmed terhadap helper yang masih "available".
	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Helper{}).Where("id = ?", helper.ID).
			Update("availability", models.HelperBusy).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error creating booking: %v", err)
		bc.formError(c, form, "Failed to create booking. Please check your information and try again.")
		return
	}

	utils.InfoLogger.Printf("Booking created: %s for %s on %s", booking.Reference, displayTime, form.BookingDate)
	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully!", booking)
}

// GetConfirmation -> detail booking + helper untuk halaman konfirmasi
func (bc *BookingController) GetConfirmation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		redirectError(c, http.StatusUnauthorized, "Please log in first", "/login")
		return
	}

	bookingID := c.Param("booking_id")

	var booking models.Booking
	if err := bc.DB.Preload("Helper").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		utils.ErrorLogger.Printf("Confirmation: booking %s not found", bookingID)
		redirectError(c, http.StatusNotFound, "Booking not found", "/")
		return
	}

	if booking.UserID != userID {
		utils.InfoLogger.Printf("Confirmation denied: booking %d belongs to user %d, requested by %d",
			booking.ID, booking.UserID, userID)
		redirectError(c, http.StatusForbidden, "You can only view your own bookings", "/")
		return
	}

	// Referensi helper bisa dangling kalau record-nya hilang
	if booking.Helper.ID == 0 {
		redirectError(c, http.StatusNotFound, "Helper information not available", "/")
		return
	}

	utils.InfoLogger.Printf("Confirmation viewed: booking %s by user %d", booking.Reference, userID)
	utils.RespondJSON(c, http.StatusOK, "Booking confirmed", gin.H{
		"booking":              booking,
		"helper":               booking.Helper,
		"booking_date_display": booking.BookingDate.Format("January 2, 2006"),
		"total_display":        utils.FormatINR(booking.TotalAmount),
	})
}

// ListUserBookings -> semua booking milik user, terbaru dulu
func (bc *BookingController) ListUserBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		redirectError(c, http.StatusUnauthorized, "Please log in first", "/login")
		return
	}

	var bookings []models.Booking
	if err := bc.DB.Preload("Helper").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.ErrorLogger.Printf("Error loading bookings for user %d: %v", userID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type bookingItem struct {
		models.Booking
		BookingDateDisplay string `json:"booking_date_display"`
		TotalDisplay       string `json:"total_display"`
	}

	items := make([]bookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingItem{
			Booking:            b,
			BookingDateDisplay: b.BookingDate.Format("Jan 2, 2006"),
			TotalDisplay:       utils.FormatINR(b.TotalAmount),
		})
	}

	utils.InfoLogger.Printf("Listed %d bookings for user %d", len(items), userID)
	utils.RespondJSON(c, http.StatusOK, "My bookings", items)
}

// CancelBooking -> confirmed => cancelled, helper dibebaskan lagi
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		redirectError(c, http.StatusUnauthorized, "Please log in first", "/login")
		return
	}

	bookingID := c.Param("booking_id")

	var booking models.Booking
	if err := bc.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		utils.ErrorLogger.Printf("Cancel: booking %s not found", bookingID)
		redirectError(c, http.StatusNotFound, "Booking not found", "/booking/my-bookings")
		return
	}

	if booking.UserID != userID {
		utils.InfoLogger.Printf("Cancel denied: booking %d belongs to user %d, requested by %d",
			booking.ID, booking.UserID, userID)
		redirectError(c, http.StatusForbidden, "You can only cancel your own bookings", "/booking/my-bookings")
		return
	}

	// Cancelled dan completed adalah state terminal
	if booking.Status == models.BookingCancelled {
		redirectError(c, http.StatusBadRequest, "This booking is already cancelled", "/booking/my-bookings")
		return
	}
	if booking.Status == models.BookingCompleted {
		redirectError(c, http.StatusBadRequest, "Cannot cancel a completed booking", "/booking/my-bookings")
		return
	}

	now := time.Now()
	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":       models.BookingCancelled,
				"cancelled_at": now,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Helper{}).Where("id = ?", booking.HelperID).
			Update("availability", models.HelperAvailable).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error cancelling booking %d: %v", booking.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	booking.Status = models.BookingCancelled
	booking.CancelledAt = &now

	utils.InfoLogger.Printf("Booking cancelled: %s", booking.Reference)
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled successfully", booking)
}
