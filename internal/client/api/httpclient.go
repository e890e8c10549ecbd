package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPClient implements Client against the REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the given base URL. tokens may return
// "" for unauthenticated calls (login, register).
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// do performs one request/response cycle and applies the uniform response
// policy. body is marshalled as JSON when non-nil; out is decoded from a
// 2xx body when non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized

	case resp.StatusCode >= 400:
		msg := "request failed"
		var eb errorBody
		if data, err := io.ReadAll(resp.Body); err == nil {
			if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
				msg = eb.Error
			}
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Credentials, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var creds models.Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	req := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}

	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	return c.do(ctx, http.MethodPatch, "/users/me", upd, nil)
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, "/books/", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) MyLoans(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	if err := c.do(ctx, http.MethodGet, "/loans/my", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *HTTPClient) BorrowBook(ctx context.Context, bookID int64) (*models.Loan, error) {
	req := struct {
		BookID int64 `json:"book_id"`
	}{BookID: bookID}

	var loan models.Loan
	if err := c.do(ctx, http.MethodPost, "/loans/", req, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (c *HTTPClient) ReturnLoan(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/loans/%d", id), nil, nil)
}

func (c *HTTPClient) ReadingList(ctx context.Context) ([]models.ReadingListEntry, error) {
	var entries []models.ReadingListEntry
	if err := c.do(ctx, http.MethodGet, "/reading-list/", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) AddToReadingList(ctx context.Context, bookID int64, note string) (*models.ReadingListEntry, error) {
	req := struct {
		BookID int64  `json:"book_id"`
		Note   string `json:"note,omitempty"`
	}{BookID: bookID, Note: note}

	var entry models.ReadingListEntry
	if err := c.do(ctx, http.MethodPost, "/reading-list/", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *HTTPClient) UpdateReadingNote(ctx context.Context, id int64, note string) error {
	req := struct {
		Note string `json:"note"`
	}{Note: note}

	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/reading-list/%d", id), req, nil)
}

func (c *HTTPClient) RemoveFromReadingList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reading-list/%d", id), nil, nil)
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AdminCreateUser(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := c.do(ctx, http.MethodPost, "/admin/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) AdminUpdateUser(ctx context.Context, id int64, in models.AdminUserUpdate) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), in, nil)
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func (c *HTTPClient) AdminBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, "/admin/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) AdminCreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, http.MethodPost, "/admin/books", in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) AdminUpdateBook(ctx context.Context, id int64, in models.BookInput) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/books/%d", id), in, nil)
}

func (c *HTTPClient) AdminDeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/books/%d", id), nil, nil)
}

func (c *HTTPClient) AdminLoans(ctx context.Context) ([]models.AdminLoan, error) {
	var loans []models.AdminLoan
	if err := c.do(ctx, http.MethodGet, "/admin/loans", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *HTTPClient) AdminDeleteLoan(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/loans/%d", id), nil, nil)
}
