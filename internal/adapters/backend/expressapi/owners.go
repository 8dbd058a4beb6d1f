package expressapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/platform/httpclient"
)

const ownersPath = "/propietarios"

// OwnersClient implementa owners.API contra /propietarios.
type OwnersClient struct {
	http *httpclient.Client
}

func (c *OwnersClient) List(ctx context.Context, page, limit int) ([]owners.Owner, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", ownersPath, page, limit)

	var raw json.RawMessage
	h, err := c.http.DoJSONHeader(ctx, http.MethodGet, path, nil, nil, &raw)
	if err != nil {
		return nil, 0, err
	}

	list, err := envelope.List[owners.Owner](raw)
	if err != nil {
		return nil, 0, fmt.Errorf("expressapi: propietarios: %w", err)
	}
	return list, totalFrom(raw, h), nil
}

func (c *OwnersClient) Create(ctx context.Context, in owners.Input) (owners.Owner, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, ownersPath, nil, in, &raw); err != nil {
		return owners.Owner{}, err
	}
	return envelope.Resource[owners.Owner](raw)
}

func (c *OwnersClient) Update(ctx context.Context, id int64, in owners.Input) (owners.Owner, error) {
	path := fmt.Sprintf("%s/%d", ownersPath, id)

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPut, path, nil, in, &raw); err != nil {
		return owners.Owner{}, err
	}
	return envelope.Resource[owners.Owner](raw)
}

func (c *OwnersClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", ownersPath, id)
	return c.http.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// totalFrom saca el total de meta.total, con fallback al header
// x-total-count.
func totalFrom(raw json.RawMessage, h http.Header) int {
	if n, ok := envelope.Total(raw); ok {
		return n
	}
	if v := h.Get("X-Total-Count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
