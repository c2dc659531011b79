package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SRAJAN1405/hotel/utils"
)

// DeliveryCharge is the flat fee added to the cart subtotal at checkout.
const DeliveryCharge = 40.0

// CheckoutClient posts a cart to the order service and returns the payment
// session used to open the gateway's hosted checkout page.
type CheckoutClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCheckoutClient(baseURL string) *CheckoutClient {
	return &CheckoutClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CheckoutResult carries the identifiers the browser needs for the redirect.
type CheckoutResult struct {
	PaymentSessionID string `json:"payment_session_id"`
	OrderID          string `json:"order_id"`
}

// Checkout submits the cart contents plus the delivery charge. The cart is
// left untouched on success; clearing it is an explicit user action.
func (cc *CheckoutClient) Checkout(cart *Cart) (*CheckoutResult, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	orderItems := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, map[string]interface{}{
			"id":       item.ID,
			"name":     item.Name,
			"price":    utils.ParseCurrency(item.Price),
			"quantity": item.Quantity,
		})
	}

	payload := map[string]interface{}{
		"items": orderItems,
		"total": cart.Total() + DeliveryCharge,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	resp, err := cc.httpClient.Post(cc.baseURL+"/api/order/create-order", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("checkout failed: %s", string(body))
	}

	var result CheckoutResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}
	return &result, nil
}
