package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного шлюза Cashfree
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	apiVersion   string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL, clientID, clientSecret, apiVersion string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		apiVersion:   apiVersion,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)
	req.Header.Set("x-api-version", c.apiVersion)
}

// CreateOrder создает заказ в платёжном шлюзе и возвращает session id
// для hosted checkout
func (c *Client) CreateOrder(ctx context.Context, orderReq *CreateOrderRequest) (*Order, error) {
	url := fmt.Sprintf("%s/pg/orders", c.baseURL)

	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("CreateOrder: gateway returned status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if order.PaymentSessionID == "" {
		return nil, fmt.Errorf("%w: empty payment_session_id in response", ErrInvalidResponse)
	}

	c.log.Info("CreateOrder: order %s created, amount=%.2f %s", order.OrderID, order.OrderAmount, order.OrderCurrency)
	return &order, nil
}

// GetOrderPayments получает список платежей по заказу
// Используется для верификации статуса оплаты
func (c *Client) GetOrderPayments(ctx context.Context, orderID string) ([]Payment, error) {
	url := fmt.Sprintf("%s/pg/orders/%s/payments", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrOrderNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var payments []Payment
	if err := json.NewDecoder(resp.Body).Decode(&payments); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return payments, nil
}
