package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diewo77/smash-board/internal/models"
)

const (
	DefaultRandomUserURL = "https://randomuser.me/api/"
	DefaultCount         = 40
)

// randomUserResponse mirrors the subset of the randomuser.me payload we render.
type randomUserResponse struct {
	Results []randomUser `json:"results"`
}

type randomUser struct {
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
	Email string `json:"email"`
	Login struct {
		SHA256 string `json:"sha256"`
	} `json:"login"`
	Phone string `json:"phone"`
}

func (u randomUser) toProfile() models.Profile {
	return models.Profile{
		ID:        u.Login.SHA256,
		FirstName: u.Name.First,
		LastName:  u.Name.Last,
		AvatarURL: u.Picture.Large,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// RandomUser fetches profiles from the randomuser.me API.
type RandomUser struct {
	baseURL string
	count   int
	timeout time.Duration
	client  *http.Client
}

// NewRandomUser builds a client. Zero values fall back to the public endpoint,
// 40 results and http.DefaultClient.
func NewRandomUser(baseURL string, count int, timeout time.Duration, client *http.Client) *RandomUser {
	if baseURL == "" {
		baseURL = DefaultRandomUserURL
	}
	if count <= 0 {
		count = DefaultCount
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RandomUser{baseURL: baseURL, count: count, timeout: timeout, client: client}
}

// RequestURL returns the URL fetched by LoadProfiles.
func (c *RandomUser) RequestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse profile url: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.count))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// LoadProfiles performs one GET and returns the results in service order.
func (c *RandomUser) LoadProfiles(ctx context.Context) ([]models.Profile, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	target, err := c.RequestURL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profiles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload randomUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	out := make([]models.Profile, 0, len(payload.Results))
	for _, u := range payload.Results {
		out = append(out, u.toProfile())
	}
	return out, nil
}
