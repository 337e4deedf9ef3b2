package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
	"gorm.io/gorm"
)

// ActSnapshot the act fields the saved-acts workflow denormalizes
type ActSnapshot struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Impact    string `json:"impact"`
	Penalties string `json:"penalties"`
}

// ActsClient capability to fetch one act by ID. Returns ErrActNotFound when
// the act does not exist and ErrActsServiceUnavailable on transport failures.
type ActsClient interface {
	FetchAct(actID int) (*ActSnapshot, error)
}

// actsHTTPClient ActsClient over the acts service's REST API
type actsHTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewActsHTTPClient creates an ActsClient that calls the remote acts service
func NewActsHTTPClient(baseURL string, timeout time.Duration) ActsClient {
	return &actsHTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchAct fetches an act from the acts service. No retries: a failure here
// fails the caller's request.
func (c *actsHTTPClient) FetchAct(actID int) (*ActSnapshot, error) {
	url := fmt.Sprintf("%s/api/acts/%d", c.baseURL, actID)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActsServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrActNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: acts service returned HTTP %d", ErrActsServiceUnavailable, resp.StatusCode)
	}

	var act ActSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&act); err != nil {
		return nil, fmt.Errorf("%w: could not parse acts service response: %v", ErrActsServiceUnavailable, err)
	}

	return &act, nil
}

// localActsClient ActsClient over this process's own acts table, used when no
// remote acts service is configured
type localActsClient struct {
	actRepo repository.ActRepository
}

// NewLocalActsClient creates an ActsClient backed by the local acts repository
func NewLocalActsClient(actRepo repository.ActRepository) ActsClient {
	return &localActsClient{actRepo: actRepo}
}

// FetchAct reads the act from the local database
func (c *localActsClient) FetchAct(actID int) (*ActSnapshot, error) {
	act, err := c.actRepo.FindByID(actID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActNotFound
		}
		return nil, err
	}

	return &ActSnapshot{
		ID:        act.ID,
		Title:     act.Title,
		Summary:   act.Summary,
		Impact:    act.Impact,
		Penalties: act.Penalties,
	}, nil
}
