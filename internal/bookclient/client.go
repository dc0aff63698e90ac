// Package bookclient implements the selfplay client: an HTTP client for the
// analysis server's book API and a loop that plays engine-vs-engine games to
// grow the book.
package bookclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/reversilabs/flipdisc/internal/config"
	"github.com/reversilabs/flipdisc/internal/models"
)

const (
	clientTimeout = 10 * time.Second
)

// Client talks to the analysis server's API on behalf of a selfplay worker.
type Client struct {
	// config contains details on how to connect to the server
	config *config.SelfplayConfig

	// hostname is the hostname of the machine running the client
	hostname string

	// gitCommit is the git commit hash of the client
	gitCommit string

	// clientID is assigned by the server on registration
	clientID string

	http *http.Client
}

func getGitCommit() string {
	commit, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(commit))
}

func NewClient(cfg *config.SelfplayConfig) (*Client, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}

	return &Client{
		config:    cfg,
		hostname:  hostname,
		gitCommit: getGitCommit(),
		http:      &http.Client{Timeout: clientTimeout},
	}, nil
}

// Register registers the client with the server and stores the assigned ID.
func (c *Client) Register() error {
	req := models.RegisterRequest{
		Hostname:  c.hostname,
		GitCommit: c.gitCommit,
	}

	var resp models.RegisterResponse
	if err := c.post("/api/clients/register", req, &resp); err != nil {
		return fmt.Errorf("failed to register client: %w", err)
	}

	c.clientID = resp.ClientID
	return nil
}

// Heartbeat tells the server the client is still alive.
func (c *Client) Heartbeat() error {
	return c.post("/api/clients/heartbeat", nil, nil)
}

// SubmitPlayouts uploads a batch of book entries.
func (c *Client) SubmitPlayouts(payload models.PlayoutsPayload) error {
	return c.post("/api/book/playouts", payload, nil)
}

// post sends a JSON POST request with the auth and client headers and decodes
// the response into out when out is non-nil.
func (c *Client) post(path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	request, err := http.NewRequest(http.MethodPost, c.config.ServerURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-token", c.config.Token)
	if c.clientID != "" {
		request.Header.Set("x-client-id", c.clientID)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(response.Body)
		return fmt.Errorf("unexpected status %d: %s", response.StatusCode, string(responseBody))
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
