package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TestContext carries HTTP state across steps of one scenario: the last
// response and named values saved by earlier steps.
type TestContext struct {
	baseURL string
	client  *http.Client

	lastStatus int
	lastBody   map[string]any
	lastRaw    []byte

	vars map[string]string
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		vars:    make(map[string]string),
	}
}

func (tc *TestContext) POST(path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, tc.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

func (tc *TestContext) GET(path string) error {
	req, err := http.NewRequest(http.MethodGet, tc.baseURL+path, nil)
	if err != nil {
		return err
	}
	return tc.do(req)
}

func (tc *TestContext) DELETE(path string) error {
	req, err := http.NewRequest(http.MethodDelete, tc.baseURL+path, nil)
	if err != nil {
		return err
	}
	return tc.do(req)
}

func (tc *TestContext) do(req *http.Request) error {
	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	tc.lastStatus = resp.StatusCode
	tc.lastRaw = raw
	tc.lastBody = nil
	if len(raw) > 0 {
		// Non-object bodies (arrays) stay accessible through LastRaw.
		_ = json.Unmarshal(raw, &tc.lastBody)
	}
	return nil
}

func (tc *TestContext) LastStatus() int {
	return tc.lastStatus
}

func (tc *TestContext) LastRaw() []byte {
	return tc.lastRaw
}

// ResponseField returns a top-level field of the last JSON response.
func (tc *TestContext) ResponseField(name string) (any, error) {
	if tc.lastBody == nil {
		return nil, fmt.Errorf("last response was not a JSON object: %s", tc.lastRaw)
	}
	value, ok := tc.lastBody[name]
	if !ok {
		return nil, fmt.Errorf("field %q not present in response: %s", name, tc.lastRaw)
	}
	return value, nil
}

func (tc *TestContext) SetVar(key, value string) {
	tc.vars[key] = value
}

func (tc *TestContext) Var(key string) (string, error) {
	value, ok := tc.vars[key]
	if !ok {
		return "", fmt.Errorf("no saved value for %q", key)
	}
	return value, nil
}
