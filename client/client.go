// Package client is a thin typed client for the account service API. It
// calls the same endpoints the frontend does and decodes the
// success/error result envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mkobayashi/account-service/internal/account/dto"
	"github.com/mkobayashi/account-service/internal/apperr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Type != "success" {
		if env.Error == nil {
			return apperr.New(apperr.CodeDatabaseError, "unknown error")
		}
		return apperr.New(apperr.Code(env.Error.Code), env.Error.Message)
	}

	if out != nil && len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	return nil
}

func (c *Client) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	var out dto.RegisterOutput
	if err := c.do(ctx, http.MethodPost, "/api/user/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Account(ctx context.Context, identifier string) (*dto.AccountOutput, error) {
	var out dto.AccountOutput
	if err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(identifier), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Accounts(ctx context.Context) ([]dto.AccountOutput, error) {
	var out []dto.AccountOutput
	if err := c.do(ctx, http.MethodGet, "/api/user/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, identifier string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/"+url.PathEscape(identifier), nil, nil)
}

func (c *Client) Exists(ctx context.Context, identifier string) (bool, error) {
	var out dto.ExistenceOutput
	if err := c.do(ctx, http.MethodGet, "/api/user/existence/"+url.PathEscape(identifier), nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (c *Client) VerifyPassword(ctx context.Context, identifier, passwordHash string) (*dto.VerifyOutput, error) {
	var out dto.VerifyOutput
	path := "/api/user/verify/password/" + url.PathEscape(identifier) + "/" + url.PathEscape(passwordHash)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyToken(ctx context.Context, token string) (*dto.VerifyOutput, error) {
	var out dto.VerifyOutput
	if err := c.do(ctx, http.MethodGet, "/api/user/verify/token/"+url.PathEscape(token), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IssueToken(ctx context.Context, id int64) (string, error) {
	var out dto.TokenOutput
	if err := c.do(ctx, http.MethodGet, "/api/user/gen_token/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}
