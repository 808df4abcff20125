package mturk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	productionEndpoint = "https://mturk-requester.us-east-1.amazonaws.com"
	sandboxEndpoint    = "https://mturk-requester-sandbox.us-east-1.amazonaws.com"

	targetPrefix = "MTurkRequesterServiceV20170117"
)

// Client is the typed boundary to the marketplace requester API. Every
// operation is a single attempt; failures come back as *ServiceError.
type Client interface {
	CreateHIT(ctx context.Context, input *CreateHITInput) (*CreateHITOutput, error)
	UpdateExpirationForHIT(ctx context.Context, hitID string, expireAt time.Time) error
	ApproveAssignment(ctx context.Context, assignmentID, feedback string) error
	RejectAssignment(ctx context.Context, assignmentID, feedback string) error
	SendBonus(ctx context.Context, workerID, assignmentID, amount, reason string) error
	CreateWorkerBlock(ctx context.Context, workerID, reason string) error
	DeleteWorkerBlock(ctx context.Context, workerID, reason string) error
	NotifyWorkers(ctx context.Context, subject, message string, workerIDs []string) error
	GetAccountBalance(ctx context.Context) (string, error)
}

type CreateHITInput struct {
	Title                       string                     `json:"Title"`
	Description                 string                     `json:"Description"`
	Keywords                    string                     `json:"Keywords"`
	Reward                      string                     `json:"Reward"`
	AssignmentDurationInSeconds int64                      `json:"AssignmentDurationInSeconds"`
	AutoApprovalDelayInSeconds  int64                      `json:"AutoApprovalDelayInSeconds"`
	LifetimeInSeconds           int64                      `json:"LifetimeInSeconds"`
	Question                    string                     `json:"Question"`
	QualificationRequirements   []QualificationRequirement `json:"QualificationRequirements,omitempty"`
	UniqueRequestToken          string                     `json:"UniqueRequestToken,omitempty"`
}

type CreateHITOutput struct {
	HIT struct {
		HITId     string `json:"HITId"`
		HITTypeId string `json:"HITTypeId"`
	} `json:"HIT"`
}

// HTTPClient talks JSON over HTTPS to the requester endpoint, signing each
// request with the credential pair it was constructed with.
type HTTPClient struct {
	endpoint   string
	signer     *signer
	httpClient *http.Client
}

func NewHTTPClient(accessKey, secretKey string, sandbox bool) *HTTPClient {
	endpoint := productionEndpoint
	if sandbox {
		endpoint = sandboxEndpoint
	}
	return &HTTPClient{
		endpoint: endpoint,
		signer:   newSigner(accessKey, secretKey),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *HTTPClient) CreateHIT(ctx context.Context, input *CreateHITInput) (*CreateHITOutput, error) {
	var out CreateHITOutput
	if err := c.call(ctx, "CreateHIT", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateExpirationForHIT(ctx context.Context, hitID string, expireAt time.Time) error {
	input := struct {
		HITId    string `json:"HITId"`
		ExpireAt int64  `json:"ExpireAt"`
	}{hitID, expireAt.Unix()}
	return c.call(ctx, "UpdateExpirationForHIT", input, nil)
}

func (c *HTTPClient) ApproveAssignment(ctx context.Context, assignmentID, feedback string) error {
	input := struct {
		AssignmentId      string `json:"AssignmentId"`
		RequesterFeedback string `json:"RequesterFeedback,omitempty"`
	}{assignmentID, feedback}
	return c.call(ctx, "ApproveAssignment", input, nil)
}

func (c *HTTPClient) RejectAssignment(ctx context.Context, assignmentID, feedback string) error {
	input := struct {
		AssignmentId      string `json:"AssignmentId"`
		RequesterFeedback string `json:"RequesterFeedback"`
	}{assignmentID, feedback}
	return c.call(ctx, "RejectAssignment", input, nil)
}

func (c *HTTPClient) SendBonus(ctx context.Context, workerID, assignmentID, amount, reason string) error {
	input := struct {
		WorkerId     string `json:"WorkerId"`
		AssignmentId string `json:"AssignmentId"`
		BonusAmount  string `json:"BonusAmount"`
		Reason       string `json:"Reason"`
	}{workerID, assignmentID, amount, reason}
	return c.call(ctx, "SendBonus", input, nil)
}

func (c *HTTPClient) CreateWorkerBlock(ctx context.Context, workerID, reason string) error {
	input := struct {
		WorkerId string `json:"WorkerId"`
		Reason   string `json:"Reason,omitempty"`
	}{workerID, reason}
	return c.call(ctx, "CreateWorkerBlock", input, nil)
}

func (c *HTTPClient) DeleteWorkerBlock(ctx context.Context, workerID, reason string) error {
	input := struct {
		WorkerId string `json:"WorkerId"`
		Reason   string `json:"Reason,omitempty"`
	}{workerID, reason}
	return c.call(ctx, "DeleteWorkerBlock", input, nil)
}

func (c *HTTPClient) NotifyWorkers(ctx context.Context, subject, message string, workerIDs []string) error {
	input := struct {
		Subject     string   `json:"Subject"`
		MessageText string   `json:"MessageText"`
		WorkerIds   []string `json:"WorkerIds"`
	}{subject, message, workerIDs}
	return c.call(ctx, "NotifyWorkers", input, nil)
}

func (c *HTTPClient) GetAccountBalance(ctx context.Context) (string, error) {
	var out struct {
		AvailableBalance string `json:"AvailableBalance"`
	}
	if err := c.call(ctx, "GetAccountBalance", struct{}{}, &out); err != nil {
		return "", err
	}
	return out.AvailableBalance, nil
}

// call posts one JSON request for the given operation and decodes the
// response into output when non-nil.
func (c *HTTPClient) call(ctx context.Context, op string, input, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return &ServiceError{Op: op, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/", bytes.NewReader(body))
	if err != nil {
		return &ServiceError{Op: op, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	req.Header.Set("X-Amz-Target", targetPrefix+"."+op)
	c.signer.Sign(req, body, time.Now().UTC())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Message: fmt.Sprintf("HTTP POST failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ServiceError{Op: op, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return decodeServiceError(op, resp.StatusCode, respBody)
	}

	if output != nil {
		if err := json.Unmarshal(respBody, output); err != nil {
			return &ServiceError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
		}
	}

	return nil
}

// decodeServiceError unpacks the AWS JSON error envelope. The __type field
// carries a "namespace#ErrorCode" shape; only the code part is kept.
func decodeServiceError(op string, status int, body []byte) *ServiceError {
	var envelope struct {
		Type    string `json:"__type"`
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return &ServiceError{Op: op, Message: fmt.Sprintf("unexpected status code %d: %s", status, string(body))}
	}

	code := envelope.Type
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return &ServiceError{Op: op, Code: code, Message: envelope.Message}
}
