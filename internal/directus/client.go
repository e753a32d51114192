// Package directus is the REST client for the external data platform that
// owns every persistent record this service touches: the Employees
// collection (read-only here) and the Employee_Days_Off collection
// (written once per successful submission). PIN verification is also
// delegated to the platform; this service never hashes or compares
// credentials itself.
package directus

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
	"strings"
	"time"

	"github.com/zanda/offday-portal/internal/model"
)

const (
	collectionEmployees = "Employees"
	collectionOffDays   = "Employee_Days_Off"

	// employeeFields limits reads to the columns the dispatchers need.
	employeeFields = "id,Employee_Username,employee_pin,First_Name"
)

var (
	// ErrNotFound is returned when a lookup matches no employee record.
	ErrNotFound = errors.New("directus: record not found")
	// ErrDisabled is returned by every call when no API key is configured.
	ErrDisabled = errors.New("directus: client disabled, no API key configured")
)

// Store is the surface the dispatchers need from the data platform.
type Store interface {
	EmployeeByUsername(ctx context.Context, username string) (*model.Employee, error)
	EmployeeByID(ctx context.Context, id int) (*model.Employee, error)
	CreateOffDay(ctx context.Context, p model.OffDayPayload) error
	VerifyPin(ctx context.Context, pin, hash string) (bool, error)
}

// Config carries the connection settings for New. HTTPClient overrides the
// default client and is meant for tests.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New builds a Store for the given platform. When no token is configured
// the returned Store is a disabled variant whose calls fail with
// ErrDisabled, so callers deal with an explicit error instead of a nil
// client.
func New(cfg Config) Store {
	if cfg.Token == "" {
		return disabled{}
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		token: cfg.Token,
		http:  hc,
	}
}

// Client talks to a live platform with a static bearer token.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// EmployeeByUsername queries the Employees collection for an exact
// username match, limited to one record. Zero matches yield ErrNotFound.
func (c *Client) EmployeeByUsername(ctx context.Context, username string) (*model.Employee, error) {
	q := url.Values{}
	q.Set("fields", employeeFields)
	q.Set("filter[Employee_Username][_eq]", username)
	q.Set("limit", "1")

	var out struct {
		Data []model.Employee `json:"data"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/items/"+collectionEmployees, q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, ErrNotFound
	}
	return &out.Data[0], nil
}

// EmployeeByID reads one employee record by primary key. The platform
// answers 403 for ids outside the token's scope, which covers deleted
// records, so 4xx statuses map to ErrNotFound.
func (c *Client) EmployeeByID(ctx context.Context, id int) (*model.Employee, error) {
	q := url.Values{}
	q.Set("fields", employeeFields)

	var out struct {
		Data model.Employee `json:"data"`
	}
	status, err := c.do(ctx, http.MethodGet, "/items/"+collectionEmployees+"/"+strconv.Itoa(id), q, nil, &out)
	if err != nil {
		if status >= 400 && status < 500 {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out.Data, nil
}

// offDayItem is the wire shape of an Employee_Days_Off record.
type offDayItem struct {
	Employee   int     `json:"Employee"`
	SingleDay  bool    `json:"Single_Day"`
	StartDay   *string `json:"Start_Day"`
	EndDate    *string `json:"End_Date"`
	Notes      *string `json:"Notes"`
	DayOffType string  `json:"Day_Off_Type"`
}

// CreateOffDay inserts one record into the Employee_Days_Off collection.
// There is no dedup key; identical submissions create identical records.
func (c *Client) CreateOffDay(ctx context.Context, p model.OffDayPayload) error {
	item := offDayItem{
		Employee:   p.Employee,
		SingleDay:  p.Single,
		StartDay:   p.StartDate,
		EndDate:    p.EndDate,
		Notes:      p.Notes,
		DayOffType: p.Type,
	}
	_, err := c.do(ctx, http.MethodPost, "/items/"+collectionOffDays, nil, item, nil)
	return err
}

// VerifyPin asks the platform to compare a plaintext PIN against a stored
// hash.
func (c *Client) VerifyPin(ctx context.Context, pin, hash string) (bool, error) {
	body := struct {
		String string `json:"string"`
		Hash   string `json:"hash"`
	}{String: pin, Hash: hash}

	var out struct {
		Data bool `json:"data"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/utils/hash/verify", nil, body, &out); err != nil {
		return false, err
	}
	return out.Data, nil
}

// do performs one authenticated request and decodes the response into out.
// It returns the HTTP status so callers can tell not-found-shaped failures
// from transport ones.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		rdr = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= 400 {
		return resp.StatusCode, apiError(resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("directus: decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// apiError extracts the platform's error message when the body carries the
// usual {"errors":[{"message":...}]} shape.
func apiError(status int, body []byte) error {
	var e struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &e); err == nil && len(e.Errors) > 0 {
		return fmt.Errorf("directus: %s (status %d)", e.Errors[0].Message, status)
	}
	return fmt.Errorf("directus: request failed with status %d", status)
}

// disabled is the Store used when no API key is configured.
type disabled struct{}

func (disabled) EmployeeByUsername(context.Context, string) (*model.Employee, error) {
	return nil, ErrDisabled
}

func (disabled) EmployeeByID(context.Context, int) (*model.Employee, error) {
	return nil, ErrDisabled
}

func (disabled) CreateOffDay(context.Context, model.OffDayPayload) error {
	return ErrDisabled
}

func (disabled) VerifyPin(context.Context, string, string) (bool, error) {
	return false, ErrDisabled
}
