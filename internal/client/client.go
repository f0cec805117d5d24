// Package client implements a small HTTP API client for the TeaKeeper
// server, used by the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/teakeeper/internal/common"
)

// Tea mirrors the server's tea payload.
type Tea struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Client talks to a TeaKeeper server. Token, when set, is sent as a bearer
// credential on every request.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the access token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

type credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userInfoResponse struct {
	UserID int `json:"userId"`
}

// do performs one request and decodes the JSON response into out (when out
// is non-nil). Non-2xx statuses are returned as errors carrying the server's
// message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerSchemePrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var er messageResponse
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &er) == nil && er.Message != "" {
			return fmt.Errorf("server: %s (%s)", er.Message, resp.Status)
		}
		return fmt.Errorf("server: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignUp registers a new account and returns its display id.
func (c *Client) SignUp(ctx context.Context, phone, password string) (int, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/signup", credentials{Phone: phone, Password: password}, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login authenticates and returns an access token.
func (c *Client) Login(ctx context.Context, phone, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Phone: phone, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// UserInfo returns the caller's display id.
func (c *Client) UserInfo(ctx context.Context) (int, error) {
	var resp userInfoResponse
	if err := c.do(ctx, http.MethodGet, "/user-info", nil, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// AddTea creates a tea owned by the caller.
func (c *Client) AddTea(ctx context.Context, name string, price float64) (*Tea, error) {
	var tea Tea
	if err := c.do(ctx, http.MethodPost, "/teas", Tea{Name: name, Price: price}, &tea); err != nil {
		return nil, err
	}
	return &tea, nil
}

// ListTeas returns the caller's teas.
func (c *Client) ListTeas(ctx context.Context) ([]Tea, error) {
	var teas []Tea
	if err := c.do(ctx, http.MethodGet, "/teas", nil, &teas); err != nil {
		return nil, err
	}
	return teas, nil
}

// GetTea fetches one of the caller's teas by id.
func (c *Client) GetTea(ctx context.Context, id string) (*Tea, error) {
	var tea Tea
	if err := c.do(ctx, http.MethodGet, "/teas/"+id, nil, &tea); err != nil {
		return nil, err
	}
	return &tea, nil
}

// UpdateTea replaces name and price of the caller's tea.
func (c *Client) UpdateTea(ctx context.Context, id, name string, price float64) (*Tea, error) {
	var tea Tea
	if err := c.do(ctx, http.MethodPut, "/teas/"+id, Tea{Name: name, Price: price}, &tea); err != nil {
		return nil, err
	}
	return &tea, nil
}

// DeleteTea removes the caller's tea and returns the deleted record.
func (c *Client) DeleteTea(ctx context.Context, id string) (*Tea, error) {
	var tea Tea
	if err := c.do(ctx, http.MethodDelete, "/teas/"+id, nil, &tea); err != nil {
		return nil, err
	}
	return &tea, nil
}
