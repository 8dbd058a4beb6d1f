package expressapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/platform/httpclient"
)

const petsPath = "/mascotas"

// PetsClient implementa pets.API contra /mascotas (y /propietarios
// para el selector de dueño).
type PetsClient struct {
	http *httpclient.Client
}

func (c *PetsClient) List(ctx context.Context, page, limit int) ([]pets.Pet, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", petsPath, page, limit)

	var raw json.RawMessage
	h, err := c.http.DoJSONHeader(ctx, http.MethodGet, path, nil, nil, &raw)
	if err != nil {
		return nil, 0, err
	}

	list, err := envelope.List[pets.Pet](raw)
	if err != nil {
		return nil, 0, fmt.Errorf("expressapi: mascotas: %w", err)
	}
	return list, totalFrom(raw, h), nil
}

func (c *PetsClient) Create(ctx context.Context, in pets.Input) (pets.Pet, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, petsPath, nil, in, &raw); err != nil {
		return pets.Pet{}, err
	}
	return envelope.Resource[pets.Pet](raw)
}

func (c *PetsClient) Update(ctx context.Context, id int64, in pets.Input) (pets.Pet, error) {
	path := fmt.Sprintf("%s/%d", petsPath, id)

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPut, path, nil, in, &raw); err != nil {
		return pets.Pet{}, err
	}
	return envelope.Resource[pets.Pet](raw)
}

func (c *PetsClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", petsPath, id)
	return c.http.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *PetsClient) ListOwners(ctx context.Context, page, limit int) ([]pets.OwnerOption, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", ownersPath, page, limit)

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}

	list, err := envelope.List[pets.OwnerOption](raw)
	if err != nil {
		return nil, fmt.Errorf("expressapi: propietarios: %w", err)
	}
	return list, nil
}
