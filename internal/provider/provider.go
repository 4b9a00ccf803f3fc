package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/pkg/clients"
)

// callTimeout bounds every outbound provider call; on expiry the caller
// must treat the side effect as in doubt, not failed.
const callTimeout = time.Second * 10

// ErrTransient marks network-level failures that are safe to retry via an
// explicit refresh, never auto-looped.
var ErrTransient = errors.New("provider transient error")

// RejectedError is a business rejection from the provider (sold out,
// account blocked). Terminal for the attempt.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "provider rejected: " + e.Reason
}

// OrderState is the provider's view of a submitted order.
type OrderState string

const (
	StatePending   OrderState = "PENDING"
	StateConfirmed OrderState = "CONFIRMED"
	StateCompleted OrderState = "COMPLETED"
	StateRejected  OrderState = "REJECTED"
)

type RoomRate struct {
	RoomType     string  `json:"room_type"`
	Price        float64 `json:"price"`
	HasInventory bool    `json:"has_inventory"`
}

type SearchResult struct {
	HotelID string     `json:"hotel_id"`
	Rooms   []RoomRate `json:"rooms"`
}

// Snapshot extracts the watch-engine view for one room type. A missing
// room reads as no inventory; a sold-out room keeps its listed price.
func (r *SearchResult) Snapshot(roomType string, at time.Time) domain.PriceSnapshot {
	for _, room := range r.Rooms {
		if room.RoomType != roomType {
			continue
		}
		return domain.PriceSnapshot{Price: room.Price, HasInventory: room.HasInventory, At: at}
	}
	return domain.PriceSnapshot{Price: 0, HasInventory: false, At: at}
}

type SubmitResult struct {
	ProviderOrderID string `json:"provider_order_id"`
	Confirmed       bool   `json:"confirmed"`
}

type API interface {
	Search(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (*SearchResult, error)
	Submit(ctx context.Context, item *domain.OrderSplitItem, account *domain.PoolAccount) (*SubmitResult, error)
	RefreshStatus(ctx context.Context, providerOrderID string) (OrderState, string, error)
	Cancel(ctx context.Context, providerOrderID string) error
	PaymentLink(ctx context.Context, providerOrderID string) (string, error)
	DetailLink(ctx context.Context, providerOrderID string) (string, error)
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{url: url, client: client}
}

func (c *Client) call(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var body io.Reader = http.NoBody
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("can't encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return fmt.Errorf("can't build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrTransient, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		var rej struct {
			Reason string `json:"reason"`
		}
		if err := json.Unmarshal(raw, &rej); err != nil || rej.Reason == "" {
			rej.Reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return &RejectedError{Reason: rej.Reason}
	}

	if respBody == nil {
		return nil
	}
	if err := json.Unmarshal(raw, respBody); err != nil {
		return fmt.Errorf("%w: can't decode response: %v", ErrTransient, err)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (*SearchResult, error) {
	path := fmt.Sprintf("/api/hotels/%s/rooms?check_in=%s&check_out=%s",
		hotelID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	var result SearchResult
	if err := c.call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Submit(ctx context.Context, item *domain.OrderSplitItem, account *domain.PoolAccount) (*SubmitResult, error) {
	req := map[string]interface{}{
		"account_phone": account.Phone,
		"room_type":     item.RoomType,
		"room_count":    item.RoomCount,
		"check_in":      item.CheckIn.Format("2006-01-02"),
		"check_out":     item.CheckOut.Format("2006-01-02"),
		"amount":        item.Amount,
		// The item id doubles as the idempotency key on the provider side.
		"request_id": item.ID,
	}
	var result SubmitResult
	if err := c.call(ctx, http.MethodPost, "/api/orders", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RefreshStatus(ctx context.Context, providerOrderID string) (OrderState, string, error) {
	var result struct {
		Status OrderState `json:"status"`
		Reason string     `json:"reason"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/orders/"+providerOrderID, nil, &result); err != nil {
		return "", "", err
	}
	return result.Status, result.Reason, nil
}

func (c *Client) Cancel(ctx context.Context, providerOrderID string) error {
	return c.call(ctx, http.MethodPost, "/api/orders/"+providerOrderID+"/cancel", nil, nil)
}

func (c *Client) PaymentLink(ctx context.Context, providerOrderID string) (string, error) {
	return c.link(ctx, providerOrderID, "payment-link")
}

func (c *Client) DetailLink(ctx context.Context, providerOrderID string) (string, error) {
	return c.link(ctx, providerOrderID, "detail-link")
}

func (c *Client) link(ctx context.Context, providerOrderID, kind string) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/orders/"+providerOrderID+"/"+kind, nil, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}
