package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const apiVersion = "2024-01"

// ErrWebhookExists signals that the webhook subscription is already
// registered for this shop; callers treat it as success.
var ErrWebhookExists = errors.New("webhook subscription already exists")

// APIError carries a failed platform response, preserving the upstream
// body so handlers can surface it for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify api error: status=%d body=%s", e.StatusCode, e.Body)
}

// AccessToken is the response of the OAuth code exchange.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

type NoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Address struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
	Phone    string `json:"phone"`
}

type LineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Order is the subset of the platform order payload this service reads.
type Order struct {
	ID              int64           `json:"id"`
	OrderNumber     int             `json:"order_number"`
	Name            string          `json:"name"`
	CreatedAt       string          `json:"created_at"`
	TotalPrice      string          `json:"total_price"`
	Currency        string          `json:"currency"`
	Note            string          `json:"note"`
	NoteAttributes  []NoteAttribute `json:"note_attributes"`
	Customer        *Customer       `json:"customer"`
	ShippingAddress *Address        `json:"shipping_address"`
	LineItems       []LineItem      `json:"line_items"`
}

// OrderListOptions filters the order listing call.
type OrderListOptions struct {
	Status            string
	FinancialStatus   string
	FulfillmentStatus string
	Limit             int
}

// Fulfillment is the created fulfillment returned by the platform.
type Fulfillment struct {
	ID              int64  `json:"id"`
	OrderID         int64  `json:"order_id"`
	Status          string `json:"status"`
	TrackingNumber  string `json:"tracking_number"`
	TrackingCompany string `json:"tracking_company"`
	CreatedAt       string `json:"created_at"`
}

// FulfillmentInput is the fulfillment-creation payload.
type FulfillmentInput struct {
	TrackingNumber  string `json:"tracking_number"`
	TrackingCompany string `json:"tracking_company"`
	NotifyCustomer  bool   `json:"notify_customer"`
}

// Client talks to the Shopify Admin REST API. It deliberately makes direct
// HTTP calls so upstream error bodies survive verbatim into our error
// responses.
type Client struct {
	apiKey     string
	apiSecret  string
	httpClient *http.Client

	// baseURL overrides https://{shop} in tests.
	baseURL string
}

func NewClient(apiKey, apiSecret string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) shopURL(shop, path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return "https://" + shop + path
}

// AuthorizeURL builds the platform authorization URL for the install flow.
func (c *Client) AuthorizeURL(shop, scopes, redirectURI, state string) string {
	return fmt.Sprintf(
		"https://%s/admin/oauth/authorize?client_id=%s&scope=%s&redirect_uri=%s&state=%s",
		shop,
		c.apiKey,
		url.QueryEscape(scopes),
		url.QueryEscape(redirectURI),
		url.QueryEscape(state),
	)
}

// AppURL is where the browser lands after a completed install.
func (c *Client) AppURL(shop string) string {
	return fmt.Sprintf("https://%s/admin/apps/%s", shop, c.apiKey)
}

// ExchangeToken trades the authorization code for an access token via a
// server-to-server POST.
func (c *Client) ExchangeToken(ctx context.Context, shop, code string) (*AccessToken, error) {
	payload, _ := json.Marshal(map[string]string{
		"client_id":     c.apiKey,
		"client_secret": c.apiSecret,
		"code":          code,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.shopURL(shop, "/admin/oauth/access_token"), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var token AccessToken
	if err := c.do(req, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, errors.New("token exchange returned empty access_token")
	}
	return &token, nil
}

// ListOrders fetches orders matching opts.
func (c *Client) ListOrders(ctx context.Context, shop, accessToken string, opts OrderListOptions) ([]Order, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.FinancialStatus != "" {
		q.Set("financial_status", opts.FinancialStatus)
	}
	if opts.FulfillmentStatus != "" {
		q.Set("fulfillment_status", opts.FulfillmentStatus)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	endpoint := c.shopURL(shop, "/admin/api/"+apiVersion+"/orders.json")
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// CreateFulfillment submits an order-scoped fulfillment.
func (c *Client) CreateFulfillment(ctx context.Context, shop, accessToken string, orderID int64, input FulfillmentInput) (*Fulfillment, error) {
	payload, _ := json.Marshal(map[string]FulfillmentInput{"fulfillment": input})

	endpoint := c.shopURL(shop, fmt.Sprintf("/admin/api/%s/orders/%d/fulfillments.json", apiVersion, orderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	var out struct {
		Fulfillment Fulfillment `json:"fulfillment"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out.Fulfillment, nil
}

// RegisterWebhook subscribes topic at address. A 422 means the subscription
// is already present and maps to ErrWebhookExists.
func (c *Client) RegisterWebhook(ctx context.Context, shop, accessToken, topic, address string) error {
	payload, _ := json.Marshal(map[string]map[string]string{
		"webhook": {
			"topic":   topic,
			"address": address,
			"format":  "json",
		},
	})

	endpoint := c.shopURL(shop, "/admin/api/"+apiVersion+"/webhooks.json")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	err = c.do(req, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
		return ErrWebhookExists
	}
	return err
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
