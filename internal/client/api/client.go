// Package api implements a small JSON client for the backend HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

// Client talks to the backend HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Post is the API representation of a published post.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) (int, error) {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Register creates a new account. The password slice is not retained.
func (c *Client) Register(ctx context.Context, name, email string, password []byte) error {
	in := map[string]string{"name": name, "email": email, "password": string(password)}

	status, err := c.doJSON(ctx, http.MethodPost, "/users", "", in, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("register failed: status %d", status)
	}
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email string, password []byte) (string, error) {
	in := map[string]string{"username": email, "password": string(password)}

	var out loginResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/login", "", in, &out)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK:
		return out.AccessToken, nil
	case http.StatusUnauthorized:
		return "", common.ErrInvalidCredentials
	default:
		return "", fmt.Errorf("login failed: status %d", status)
	}
}

// CreatePost publishes a new post on behalf of the token's owner.
func (c *Client) CreatePost(ctx context.Context, token, title, body string) (*Post, error) {
	in := map[string]string{"title": title, "body": body}

	var out Post
	status, err := c.doJSON(ctx, http.MethodPost, "/posts", token, in, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("create post failed: status %d", status)
	}
	return &out, nil
}

// ListPosts returns all published posts.
func (c *Client) ListPosts(ctx context.Context, token string) ([]Post, error) {
	var out []Post
	status, err := c.doJSON(ctx, http.MethodGet, "/posts", token, nil, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list posts failed: status %d", status)
	}
	return out, nil
}
