// Package sms provides a client for sending SMS through the Twilio
// Messages API.
package sms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client represents a Twilio client used to send SMS notifications.
type Client struct {
	accountSID string
	authToken  string
	from       string       // sending phone number
	client     *http.Client // HTTP client used to make requests
}

// NewClient creates a new Twilio Client instance.
//
// timeout bounds every API call so a stalled carrier gateway cannot leave
// a send hanging.
func NewClient(accountSID, authToken, from string, timeout time.Duration) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{Timeout: timeout},
	}
}

// messageResponse is the subset of the Twilio message resource we read back.
type messageResponse struct {
	SID string `json:"sid"`
}

// Send sends an SMS to the given phone number and returns the message SID.
//
// It posts to the Twilio Messages endpoint and returns an error if the
// request fails or the API responds with a non-2xx status.
func (c *Client) Send(to, body string) (string, error) {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("twilio API error: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return msg.SID, nil
}
