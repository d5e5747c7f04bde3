package smsgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway represents an SMS gateway interface
type Gateway interface {
	SendSMS(phoneNumber, message string) (string, error)
	GetDeliveryStatus(messageID string) (string, error)
}

// MNotifyGateway represents the mNotify SMS gateway
type MNotifyGateway struct {
	BaseURL  string
	APIKey   string
	SenderID string
	client   *http.Client
}

// MockGateway represents a mock SMS gateway for testing
type MockGateway struct {
	Name string
}

// NewMNotifyGateway creates a new mNotify SMS gateway
func NewMNotifyGateway(baseURL, apiKey, senderID string) Gateway {
	return &MNotifyGateway{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		SenderID: senderID,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewMockGateway creates a new mock SMS gateway
func NewMockGateway(name string) Gateway {
	return &MockGateway{Name: name}
}

// SendSMS sends an SMS through mNotify's quick send endpoint
func (g *MNotifyGateway) SendSMS(phoneNumber, message string) (string, error) {
	requestBody := map[string]interface{}{
		"recipient": []string{phoneNumber},
		"sender":    g.SenderID,
		"message":   message,
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/sms/quick?key=%s", g.BaseURL, g.APIKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Summary struct {
			ID string `json:"_id"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if response.Status != "success" {
		return "", fmt.Errorf("gateway rejected message: %s", response.Message)
	}

	return response.Summary.ID, nil
}

// GetDeliveryStatus gets the delivery report for a sent campaign
func (g *MNotifyGateway) GetDeliveryStatus(messageID string) (string, error) {
	url := fmt.Sprintf("%s/campaign/%s/status?key=%s", g.BaseURL, messageID, g.APIKey)
	resp, err := g.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return response.Status, nil
}

// SendSMS simulates a send through the mock gateway
func (g *MockGateway) SendSMS(phoneNumber, message string) (string, error) {
	return fmt.Sprintf("%s-MOCK-MSG-%d", g.Name, time.Now().UnixNano()), nil
}

// GetDeliveryStatus simulates a delivery report from the mock gateway
func (g *MockGateway) GetDeliveryStatus(messageID string) (string, error) {
	return "DELIVERED", nil
}
