package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/models"
	"github.com/SRAJAN1405/hotel/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllDishes returns the complete catalog. The client sends page/limit
// query params but they are ignored here; display slicing happens client
// side.
func (mc *MenuController) GetAllDishes(c *gin.Context) {
	var menuItems []models.MenuItem
	if err := mc.DB.Find(&menuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch menu items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"menuItems": menuItems,
	})
}

// CreateDish persists a single menu item. Field presence and the category
// enum are enforced by the model hook; a violation surfaces as a store
// failure.
func (mc *MenuController) CreateDish(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Image       string `json:"image"`
		Category    string `json:"category"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save menu item")
		return
	}

	menuItem := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}

	if err := mc.DB.Create(&menuItem).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to save menu item: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save menu item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"menuItem": menuItem,
	})
}

// SeedMenu bulk-inserts the curated catalog. Not idempotent: repeated calls
// duplicate every dish, since names carry no uniqueness constraint.
func (mc *MenuController) SeedMenu(c *gin.Context) {
	items := models.SeedMenuItems()
	if err := mc.DB.Create(&items).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to seed menu items: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to seed menu items")
		return
	}

	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
	c.JSON(http.StatusOK, gin.H{
		"message": "Menu items seeded successfully",
	})
}
