// Package controller fetches device and interface lists from the vManage
// REST API.
package controller

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paularlott/logger"

	"github.com/martinsuchenak/vedgeip/internal/credentials"
	"github.com/martinsuchenak/vedgeip/internal/log"
)

// DefaultPort is the vManage HTTPS port
const DefaultPort = 8443

// Options configures a Client
type Options struct {
	Address     string
	Port        int
	Credentials credentials.Credentials
	Timeout     time.Duration
	// HTTPClient overrides the built-in client. Its transport is used as is.
	HTTPClient *http.Client
}

// Client queries one controller. Every request is a single GET; failures
// are logged and reported as an empty result.
type Client struct {
	baseURL    string
	creds      credentials.Credentials
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a client for the controller at opts.Address.
// The controller's certificate is not expected to chain to a public root,
// so verification is disabled.
func NewClient(opts Options, logger logger.Logger) *Client {
	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		var transport *http.Transport
		if defaultTransport, ok := http.DefaultTransport.(*http.Transport); ok {
			transport = defaultTransport.Clone()
		} else {
			transport = &http.Transport{}
		}
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		httpClient = &http.Client{Transport: transport, Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:    "https://" + net.JoinHostPort(opts.Address, strconv.Itoa(port)) + "/dataservice",
		creds:      opts.Credentials,
		httpClient: httpClient,
		logger:     log.OrNop(logger),
	}
}

// DeviceURL returns the device list endpoint
func (c *Client) DeviceURL() string {
	return c.baseURL + "/device"
}

// InterfaceURL returns the interface list endpoint for one device
func (c *Client) InterfaceURL(systemIP string) string {
	return c.baseURL + "/device/interface?deviceId=" + url.QueryEscape(systemIP)
}

// Devices fetches the raw device list
func (c *Client) Devices(ctx context.Context) []map[string]any {
	return c.Fetch(ctx, c.DeviceURL())
}

// Interfaces fetches the raw interface list of one device
func (c *Client) Interfaces(ctx context.Context, systemIP string) []map[string]any {
	return c.Fetch(ctx, c.InterfaceURL(systemIP))
}

// Fetch GETs endpoint and returns the records in the response's data field.
// Any error is logged and yields an empty list.
func (c *Client) Fetch(ctx context.Context, endpoint string) []map[string]any {
	rows, err := c.fetch(ctx, endpoint)
	if err != nil {
		c.logger.Error("HTTP request failed", "url", endpoint, "error", err)
		return []map[string]any{}
	}
	return rows
}

type envelope struct {
	Data []map[string]any `json:"data"`
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if env.Data == nil {
		return []map[string]any{}, nil
	}
	return env.Data, nil
}
