package Controllers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/controllers"
	"github.com/SRAJAN1405/hotel/models"
	"github.com/SRAJAN1405/hotel/services"
	"github.com/SRAJAN1405/hotel/utils"
)

func setupOrderDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// newStubGateway returns a Cashfree service pointed at a stub order-creation
// endpoint.
func newStubGateway(t *testing.T, handler http.HandlerFunc) (*services.CashfreeService, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway := services.NewCashfreeService(&services.CashfreeConfig{
		AppID:      "test-app-id",
		SecretKey:  "test-secret-key",
		WebhookURL: "https://test.com/api/order/cashfree-webhook",
		BaseURL:    server.URL,
	})
	return gateway, server
}

func acceptingGateway(t *testing.T) *services.CashfreeService {
	gateway, _ := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"order_id":%q,"payment_session_id":"session_test_123","order_status":"ACTIVE"}`, payload["order_id"])
	})
	return gateway
}

func setupOrderRouter(db *gorm.DB, gateway *services.CashfreeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := controllers.NewOrderControllerWithGateway(db, gateway)
	router.GET("/api/order", orderCtrl.GetConfirmedOrders)
	router.POST("/api/order/create-order", orderCtrl.CreateOrder)
	router.POST("/api/order/cashfree-webhook", orderCtrl.CashfreeWebhook)
	return router
}

func postJSON(router *gin.Engine, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderSuccess(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))

	body := []byte(`{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}],"total":80}`)
	w := postJSON(router, "/api/order/create-order", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order created successfully", resp["message"])
	assert.Equal(t, "session_test_123", resp["payment_session_id"])
	assert.Contains(t, resp["order_id"], "order_")

	var orders []models.Order
	assert.NoError(t, db.Preload("Items").Find(&orders).Error)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.Equal(t, 80.0, orders[0].Total)
	assert.Equal(t, "session_test_123", orders[0].PaymentSessionID)
	assert.Equal(t, resp["order_id"], orders[0].CashfreeOrderID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Naan", orders[0].Items[0].Name)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestCreateOrderValidation(t *testing.T) {
	utils.InitLogger()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "empty items",
			body:        `{"items":[],"total":80}`,
			wantMessage: "Items are required and must be an array",
		},
		{
			name:        "items not an array",
			body:        `{"items":"naan","total":80}`,
			wantMessage: "Items are required and must be an array",
		},
		{
			name:        "missing total",
			body:        `{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}]}`,
			wantMessage: "Total must be a positive number",
		},
		{
			name:        "zero total",
			body:        `{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}],"total":0}`,
			wantMessage: "Total must be a positive number",
		},
		{
			name:        "negative total",
			body:        `{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}],"total":-5}`,
			wantMessage: "Total must be a positive number",
		},
		{
			name:        "non-numeric total",
			body:        `{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}],"total":"80"}`,
			wantMessage: "Total must be a positive number",
		},
		{
			name:        "item missing name",
			body:        `{"items":[{"id":"x1","price":40,"quantity":2}],"total":80}`,
			wantMessage: "Each item must have id, name, price, and quantity",
		},
		{
			name:        "item with non-numeric price",
			body:        `{"items":[{"id":"x1","name":"Naan","price":"₹40","quantity":2}],"total":80}`,
			wantMessage: "Each item must have id, name, price, and quantity",
		},
		{
			name:        "item with non-numeric quantity",
			body:        `{"items":[{"id":"x1","name":"Naan","price":40,"quantity":"two"}],"total":80}`,
			wantMessage: "Each item must have id, name, price, and quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupOrderDB(t)
			gateway, _ := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("gateway must not be called for invalid input")
			})
			router := setupOrderRouter(db, gateway)

			w := postJSON(router, "/api/order/create-order", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])

			var count int64
			db.Model(&models.Order{}).Count(&count)
			assert.Equal(t, int64(0), count, "no order may be persisted on validation failure")
		})
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	gateway, _ := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"authentication failed","code":"request_failed"}`))
	})
	router := setupOrderRouter(db, gateway)

	body := []byte(`{"items":[{"id":"x1","name":"Naan","price":40,"quantity":2}],"total":80}`)
	w := postJSON(router, "/api/order/create-order", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to create order", resp["error"])
	assert.Contains(t, resp["details"], "authentication failed")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func seedPendingOrder(t *testing.T, db *gorm.DB, cashfreeOrderID string) {
	order := models.Order{
		CashfreeOrderID:  cashfreeOrderID,
		Total:            80,
		Status:           models.OrderStatusPending,
		PaymentSessionID: "session_test_123",
		Items: []models.OrderItem{
			{ItemID: "x1", Name: "Naan", Price: 40, Quantity: 2},
		},
	}
	assert.NoError(t, db.Create(&order).Error)
}

func webhookBody(orderID, paymentStatus string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"order":   map[string]interface{}{"order_id": orderID},
			"payment": map[string]interface{}{"payment_status": paymentStatus},
		},
	})
	return body
}

func orderStatus(t *testing.T, db *gorm.DB, cashfreeOrderID string) string {
	var order models.Order
	assert.NoError(t, db.Where("cashfree_order_id = ?", cashfreeOrderID).First(&order).Error)
	return order.Status
}

func TestWebhookSuccessConfirmsOrder(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh1")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh1", "SUCCESS"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment successful")
	assert.Equal(t, models.OrderStatusConfirmed, orderStatus(t, db, "order_wh1"))

	// Duplicate delivery of the same outcome is safe.
	w = postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh1", "SUCCESS"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusConfirmed, orderStatus(t, db, "order_wh1"))
}

func TestWebhookFailedCancelsOrder(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh2")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh2", "FAILED"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment failed")
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, db, "order_wh2"))
}

func TestWebhookCancelledCancelsOrder(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh3")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh3", "CANCELLED"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, db, "order_wh3"))
}

// A webhook that would flip one terminal state to the other is acknowledged
// but ignored.
func TestWebhookIgnoresTransitionAfterTerminalState(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh4")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh4", "FAILED"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, db, "order_wh4"))

	w = postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh4", "SUCCESS"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order already finalized")
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, db, "order_wh4"))
}

func TestWebhookUnknownStatusLeavesOrderPending(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh5")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_wh5", "USER_DROPPED"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment pending")
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, db, "order_wh5"))
}

func TestWebhookUnknownOrder(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))
	seedPendingOrder(t, db, "order_wh6")

	w := postJSON(router, "/api/order/cashfree-webhook", webhookBody("order_nope", "SUCCESS"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Purchase not found")
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, db, "order_wh6"))
}

func TestWebhookMissingOrderID(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))

	w := postJSON(router, "/api/order/cashfree-webhook", []byte(`{"data":{"payment":{"payment_status":"SUCCESS"}}}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid order_id")
}

func TestWebhookSignatureVerification(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	gateway := services.NewCashfreeService(&services.CashfreeConfig{
		AppID:         "test-app-id",
		SecretKey:     "test-secret-key",
		WebhookSecret: "test-webhook-secret",
	})
	router := setupOrderRouter(db, gateway)
	seedPendingOrder(t, db, "order_wh7")

	body := webhookBody("order_wh7", "SUCCESS")
	timestamp := "1700000000"

	mac := hmac.New(sha256.New, []byte("test-webhook-secret"))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// Wrong signature is rejected without touching the order.
	req := httptest.NewRequest(http.MethodPost, "/api/order/cashfree-webhook", bytes.NewReader(body))
	req.Header.Set("x-webhook-timestamp", timestamp)
	req.Header.Set("x-webhook-signature", "bm90LXZhbGlk")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, db, "order_wh7"))

	// The genuine signature goes through.
	req = httptest.NewRequest(http.MethodPost, "/api/order/cashfree-webhook", bytes.NewReader(body))
	req.Header.Set("x-webhook-timestamp", timestamp)
	req.Header.Set("x-webhook-signature", signature)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusConfirmed, orderStatus(t, db, "order_wh7"))
}

func TestGetConfirmedOrders(t *testing.T) {
	utils.InitLogger()
	db := setupOrderDB(t)
	router := setupOrderRouter(db, acceptingGateway(t))

	seedPendingOrder(t, db, "order_pending")
	confirmed := models.Order{
		CashfreeOrderID:  "order_confirmed",
		Total:            239.9,
		Status:           models.OrderStatusConfirmed,
		PaymentSessionID: "session_done",
		Items: []models.OrderItem{
			{ItemID: "x2", Name: "Butter Chicken", Price: 199.9, Quantity: 1},
		},
	}
	assert.NoError(t, db.Create(&confirmed).Error)

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())

		var orders []models.Order
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		assert.Len(t, orders, 1)
		assert.Equal(t, "order_confirmed", orders[0].CashfreeOrderID)
		assert.Len(t, orders[0].Items, 1)
	}
	assert.Equal(t, bodies[0], bodies[1])
}
