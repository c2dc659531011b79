package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/models"
	"github.com/SRAJAN1405/hotel/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// BookTable persists a booking request. There is no double-booking check and
// no server-side validation beyond field presence; the client owns phone and
// date validation.
func (rc *ReservationController) BookTable(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		Phone           string `json:"phone"`
		Guests          string `json:"guests"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		SpecialRequests string `json:"specialRequests"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save reservation")
		return
	}

	reservation := models.Reservation{
		Name:            req.Name,
		Phone:           req.Phone,
		Guests:          req.Guests,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to save reservation: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save reservation")
		return
	}

	utils.InfoLogger.Printf("Reservation created for %s (%s %s, %s)", reservation.Name, reservation.Date, reservation.Time, reservation.Guests)
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"reservation": reservation,
	})
}

// GetAllReservations returns every reservation in storage order. This feeds
// the unauthenticated admin view.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch reservations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"reservations": reservations,
	})
}
