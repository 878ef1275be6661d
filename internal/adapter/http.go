// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the user subsystem over HTTP.
//
// [NewHTTPUsersAdapter] returns a [store.UserRepository], so the subject
// service resolves alumni the same way whether users live in the local
// database or behind the remote API. Status codes are mapped to the
// sentinel errors in errors.go by mapHTTPError and then translated to the
// store errors callers match with [errors.Is].
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/internal/utils"
	"github.com/MKhiriev/go-subjects/models"
)

const (
	traceIDHeader = "X-Trace-ID"

	retryCount = 2
	retryWait  = 50 * time.Millisecond
)

// userPayload accepts both "id" and Mongo-style "_id" identifiers.
type userPayload struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
}

func (p userPayload) toModel() models.User {
	id := p.ID
	if id == "" {
		id = p.MongoID
	}
	return models.User{ID: id, Name: p.Name, Age: p.Age, Email: p.Email}
}

type httpUsersAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUsersAdapter builds a [store.UserRepository] that calls
// GET {cfg.UsersAddress}/api/users/{id}. The address may omit the scheme, in
// which case http is assumed.
func NewHTTPUsersAdapter(cfg config.Adapter, logger *logger.Logger) (store.UserRepository, error) {
	baseURL, err := normalizeBaseURL(cfg.UsersAddress)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithRetries(retryCount, retryWait),
	)
	client.SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("creating http users adapter")
	return &httpUsersAdapter{
		client: client,
		logger: logger,
	}, nil
}

// GetUserByID maps 404 to [store.ErrUserNotFound] and transport failures or
// 5xx answers to [store.ErrStorageUnavailable].
func (h *httpUsersAdapter) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var payload userPayload

	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.
		SetPathParam("id", id).
		SetResult(&payload).
		Get("/api/users/{id}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpUsersAdapter.GetUserByID").Msg("user request failed")
		return models.User{}, fmt.Errorf("%w: get user request: %w", store.ErrStorageUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrBadRequest):
			// a malformed user id cannot name a user
			return models.User{}, store.ErrUserNotFound
		case errors.Is(err, ErrBadGateway), errors.Is(err, ErrServiceUnavailable), errors.Is(err, ErrInternalServerError):
			return models.User{}, fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
		default:
			return models.User{}, err
		}
	}

	return payload.toModel(), nil
}

func normalizeBaseURL(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", errors.New("users address is empty")
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid users address %q", address)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
