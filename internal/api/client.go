// Package api клиент API магазина: загрузка каталога и отправка заказа.
// Для ядра это чёрный ящик: ни таймаутов, ни повторов клиент не решает,
// ошибка просто возвращается вызывающему, состояние остаётся нетронутым.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
)

// ErrRequestFailed сетевая ошибка: транспорт или не-2xx ответ магазина
var ErrRequestFailed = errors.New("shop api request failed")

// Client HTTP-клиент API магазина
type Client struct {
	base string
	cdn  string
	http *http.Client
}

// NewClient создаёт клиент. base — корень API (".../api/v1"),
// cdn — префикс для ссылок на изображения товаров.
func NewClient(base, cdn string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		cdn:  strings.TrimRight(cdn, "/"),
		http: hc,
	}
}

type listResponse struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

type apiError struct {
	Error string `json:"error"`
}

// FetchCatalog загружает полный каталог. Ссылки на изображения
// дополняются префиксом CDN.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/product", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET /product: %s", ErrRequestFailed, respError(resp))
	}
	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", ErrRequestFailed, err)
	}
	items := list.Items
	if c.cdn != "" {
		for i := range items {
			items[i].Image = c.cdn + items[i].Image
		}
	}
	return items, nil
}

// SubmitOrder отправляет заказ. При любой ошибке корзина и черновик
// остаются у вызывающего нетронутыми, повтор безопасен.
func (c *Client) SubmitOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/order", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: POST /order: %s", ErrRequestFailed, respError(resp))
	}
	var result domain.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode order result: %v", ErrRequestFailed, err)
	}
	return &result, nil
}

func respError(resp *http.Response) string {
	var e apiError
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return fmt.Sprintf("%s (%s)", resp.Status, e.Error)
	}
	return resp.Status
}
