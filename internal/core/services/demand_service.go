package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrDemandRelayFailed is returned when the relay endpoint rejects a demand
var ErrDemandRelayFailed = errors.New("demand relay failed")

// DemandInput is a contact request from the public site
type DemandInput struct {
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Subject string `json:"assunto"`
	Message string `json:"mensagem"`
}

// DemandService relays contact demands to the configured form endpoint.
// Without an endpoint the service is disabled and demands are dropped with
// a log line only.
type DemandService struct {
	endpoint string
	enabled  bool
	client   *http.Client
}

// NewDemandService creates a new demand service
func NewDemandService(endpoint string) *DemandService {
	return &DemandService{
		endpoint: endpoint,
		enabled:  endpoint != "",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled checks if demand relaying is configured
func (s *DemandService) IsEnabled() bool {
	return s.enabled
}

// Send relays a demand. The notification is fire-and-forget from the
// caller's point of view; failures surface as a single error kind.
func (s *DemandService) Send(ctx context.Context, input *DemandInput) error {
	if !s.enabled {
		log.Printf("⚠️ Demand relay disabled, dropping demand from %s", input.Name)
		return nil
	}

	data := url.Values{}
	data.Set("nome", input.Name)
	data.Set("telefone", input.Phone)
	data.Set("assunto", input.Subject)
	data.Set("mensagem", input.Message)
	data.Set("_subject", fmt.Sprintf("Nova solicitação: %s", input.Subject))
	data.Set("_template", "table")
	data.Set("_captcha", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", ErrDemandRelayFailed, resp.StatusCode)
	}

	log.Printf("✅ Demand relayed: %s", input.Subject)
	return nil
}
