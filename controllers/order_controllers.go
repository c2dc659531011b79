package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/models"
	"github.com/SRAJAN1405/hotel/services"
	"github.com/SRAJAN1405/hotel/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Gateway *services.CashfreeService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Gateway: services.GetCashfreeService()}
}

// NewOrderControllerWithGateway injects an explicit gateway service. Tests
// use this to point at a stub server.
func NewOrderControllerWithGateway(db *gorm.DB, gateway *services.CashfreeService) *OrderController {
	return &OrderController{DB: db, Gateway: gateway}
}

// GetConfirmedOrders returns every order the gateway has confirmed, as a bare
// array.
func (oc *OrderController) GetConfirmedOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Where("status = ?", models.OrderStatusConfirmed).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder starts a checkout: validates the submitted cart, registers the
// order with Cashfree, persists it locally as pending and hands the payment
// session id back to the client for the hosted-checkout redirect.
//
// There is no rollback if the local save fails after the gateway call
// succeeded; the gateway session is then orphaned and the order simply never
// existed on our side.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Items are required and must be an array",
		})
		return
	}

	rawItems, ok := body["items"].([]interface{})
	if !ok || len(rawItems) == 0 {
		utils.ErrorLogger.Errorf("Invalid items in create-order request")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Items are required and must be an array",
		})
		return
	}

	total, ok := body["total"].(float64)
	if !ok || total <= 0 {
		utils.ErrorLogger.Errorf("Invalid total in create-order request")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Total must be a positive number",
		})
		return
	}

	orderItems := make([]models.OrderItem, 0, len(rawItems))
	for _, raw := range rawItems {
		item, ok := raw.(map[string]interface{})
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Each item must have id, name, price, and quantity",
			})
			return
		}
		id, _ := item["id"].(string)
		name, _ := item["name"].(string)
		price, priceOK := item["price"].(float64)
		quantity, quantityOK := item["quantity"].(float64)
		if id == "" || name == "" || !priceOK || !quantityOK {
			utils.ErrorLogger.Errorf("Invalid item structure in create-order request")
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Each item must have id, name, price, and quantity",
			})
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   id,
			Name:     name,
			Price:    price,
			Quantity: int(quantity),
		})
	}

	// Collision-resistant replacement for the former epoch-millis scheme.
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	cashfreeOrderID := "order_" + token
	customerID := "guest_" + token

	gatewayResp, err := oc.Gateway.CreateOrder(cashfreeOrderID, total, customerID)
	if err != nil {
		utils.ErrorLogger.Errorf("Order creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	order := models.Order{
		CashfreeOrderID:  cashfreeOrderID,
		Items:            orderItems,
		Total:            total,
		Status:           models.OrderStatusPending,
		PaymentSessionID: gatewayResp.PaymentSessionID,
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Errorf("Order creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	utils.InfoLogger.Printf("Order created: %s (total %.2f, %d items)", cashfreeOrderID, total, len(orderItems))

	c.JSON(http.StatusCreated, gin.H{
		"message":            "Order created successfully",
		"payment_session_id": gatewayResp.PaymentSessionID,
		"order_id":           cashfreeOrderID,
	})
}

// cashfreeWebhookPayload is the nested shape Cashfree posts back.
type cashfreeWebhookPayload struct {
	Data struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"payment"`
	} `json:"data"`
}

// CashfreeWebhook consumes the asynchronous payment callback and moves the
// order to its terminal status. Delivery order is not guaranteed and
// duplicates happen, so:
//   - re-delivery of an already-applied terminal status is a safe no-op,
//   - a webhook that would flip one terminal status to the other is ignored,
//   - unknown payment statuses acknowledge with 200 so the gateway stops
//     retrying while the order stays pending.
func (oc *OrderController) CashfreeWebhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid order_id")
		return
	}

	if oc.Gateway.VerificationEnabled() {
		timestamp := c.GetHeader("x-webhook-timestamp")
		signature := c.GetHeader("x-webhook-signature")
		if !oc.Gateway.VerifyWebhookSignature(timestamp, rawBody, signature) {
			utils.ErrorLogger.Errorf("Webhook signature mismatch")
			utils.RespondMessage(c, http.StatusForbidden, "Invalid signature")
			return
		}
	}

	var payload cashfreeWebhookPayload
	_ = json.Unmarshal(rawBody, &payload)

	orderID := payload.Data.Order.OrderID
	paymentStatus := payload.Data.Payment.PaymentStatus

	if orderID == "" {
		utils.ErrorLogger.Errorf("Webhook without order_id")
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid order_id")
		return
	}

	utils.InfoLogger.Printf("Processing webhook for %s (status %s)", orderID, paymentStatus)

	var order models.Order
	if err := oc.DB.Where("cashfree_order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Errorf("Purchase not found for order_id %s", orderID)
			utils.RespondMessage(c, http.StatusNotFound, "Purchase not found")
			return
		}
		utils.RespondMessage(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	var target, message string
	switch paymentStatus {
	case "SUCCESS":
		target = models.OrderStatusConfirmed
		message = "Payment successful"
	case "FAILED", "CANCELLED":
		target = models.OrderStatusCancelled
		message = "Payment failed"
	default:
		utils.RespondMessage(c, http.StatusOK, "Payment pending")
		return
	}

	if order.IsTerminal() {
		if order.Status == target {
			// Duplicate delivery of the outcome we already recorded.
			utils.RespondMessage(c, http.StatusOK, message)
			return
		}
		utils.InfoLogger.Printf("Ignoring %s webhook for already-%s order %s", paymentStatus, order.Status, orderID)
		utils.RespondMessage(c, http.StatusOK, "Order already finalized")
		return
	}

	order.Status = target
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.ErrorLogger.Errorf("Error processing webhook: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	utils.InfoLogger.Printf("Order %s -> %s", orderID, order.Status)
	utils.RespondMessage(c, http.StatusOK, message)
}
