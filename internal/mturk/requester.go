// Package mturk is a requester-side façade over the crowdsourcing
// marketplace's task API: create and expire HITs, settle assignments, and
// manage worker blocks and bonuses. All state lives on the remote service;
// the façade only carries connection configuration.
package mturk

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/annolab/crowdtask/pkg/logger"
)

// DefaultAutoApproveDelay is how long the service waits before
// auto-approving unreviewed assignments (7 days).
const DefaultAutoApproveDelay = 604800

// DefaultFrameHeight is the pixel height of the embedded question frame.
const DefaultFrameHeight = 650

// HITSpec describes a HIT to create. Zero values for the three qualification
// thresholds mean "no filter"; see buildQualifications.
type HITSpec struct {
	Title       string
	Description string
	Page        string // slug appended to the requester's localhost URL
	Amount      float64
	Duration    int64 // assignment duration, seconds
	Lifetime    int64 // seconds until the HIT expires on its own
	Keywords    string

	AutoApproveDelay   int64 // 0 means DefaultAutoApproveDelay
	FrameHeight        int   // 0 means DefaultFrameHeight
	MinApprovedPercent int
	MinApprovedCount   int
	CountryCode        int
}

// HITReceipt is the identity the service assigns on creation.
type HITReceipt struct {
	HITID     string
	HITTypeID string
}

// Requester is the task lifecycle façade. It holds no mutable state, so one
// long-lived instance is safe to share.
type Requester struct {
	client    Client
	localhost string
	log       zerolog.Logger
}

// NewRequester wires the façade to a remote client. localhost is the base
// URL of the externally hosted question pages.
func NewRequester(client Client, localhost string) *Requester {
	return &Requester{
		client:    client,
		localhost: localhost,
		log:       logger.Get().With().Str("component", "requester").Logger(),
	}
}

// CreateHIT submits a new HIT and returns its service-assigned identity.
// Creation is atomic from the caller's point of view: either the call
// succeeds and the HIT exists, or it fails and none was created. No local
// validation happens before the call.
func (r *Requester) CreateHIT(ctx context.Context, spec HITSpec) (HITReceipt, error) {
	autoApprove := spec.AutoApproveDelay
	if autoApprove == 0 {
		autoApprove = DefaultAutoApproveDelay
	}
	height := spec.FrameHeight
	if height == 0 {
		height = DefaultFrameHeight
	}

	input := &CreateHITInput{
		Title:                       spec.Title,
		Description:                 spec.Description,
		Keywords:                    spec.Keywords,
		Reward:                      formatAmount(spec.Amount),
		AssignmentDurationInSeconds: spec.Duration,
		AutoApprovalDelayInSeconds:  autoApprove,
		LifetimeInSeconds:           spec.Lifetime,
		Question:                    ExternalQuestion(r.localhost, spec.Page, height),
		QualificationRequirements:   buildQualifications(spec.MinApprovedPercent, spec.MinApprovedCount, spec.CountryCode),
		UniqueRequestToken:          uuid.New().String(),
	}

	out, err := r.client.CreateHIT(ctx, input)
	if err != nil {
		return HITReceipt{}, err
	}

	r.log.Debug().Str("hit_id", out.HIT.HITId).Str("title", spec.Title).Msg("created HIT")
	return HITReceipt{HITID: out.HIT.HITId, HITTypeID: out.HIT.HITTypeId}, nil
}

// Disable expires the HIT immediately, ending its availability to workers.
// A disabled HIT cannot be resurrected.
func (r *Requester) Disable(ctx context.Context, hitID string) error {
	return r.client.UpdateExpirationForHIT(ctx, hitID, time.Now().UTC())
}

// Purge would disable every HIT belonging to this requester. It always
// refuses and never touches the remote service.
func (r *Requester) Purge(ctx context.Context) error {
	return ErrPurgeRefused
}

// Accept approves the assignment and pays the worker.
func (r *Requester) Accept(ctx context.Context, assignmentID, feedback string) error {
	return r.client.ApproveAssignment(ctx, assignmentID, feedback)
}

// Reject rejects the assignment; the worker is not paid.
func (r *Requester) Reject(ctx context.Context, assignmentID, feedback string) error {
	return r.client.RejectAssignment(ctx, assignmentID, feedback)
}

// Bonus grants the worker a bonus for an assignment, independent of and
// repeatable after approval.
func (r *Requester) Bonus(ctx context.Context, workerID, assignmentID string, amount float64, feedback string) error {
	return r.client.SendBonus(ctx, workerID, assignmentID, formatAmount(amount), feedback)
}

// Block prevents the worker from working on any of this requester's HITs.
func (r *Requester) Block(ctx context.Context, workerID, reason string) error {
	return r.client.CreateWorkerBlock(ctx, workerID, reason)
}

// Unblock lets a previously blocked worker work for this requester again.
func (r *Requester) Unblock(ctx context.Context, workerID, reason string) error {
	return r.client.DeleteWorkerBlock(ctx, workerID, reason)
}

// Email sends a message to a single worker.
func (r *Requester) Email(ctx context.Context, workerID, subject, message string) error {
	return r.client.NotifyWorkers(ctx, subject, message, []string{workerID})
}

// Balance returns the requester's available account balance.
func (r *Requester) Balance(ctx context.Context) (float64, error) {
	raw, err := r.client.GetAccountBalance(ctx)
	if err != nil {
		return 0, err
	}
	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance %q: %w", raw, err)
	}
	return balance, nil
}

// The requester statistics endpoints were removed from the API version this
// client targets. Each reader fails explicitly rather than pretending the
// numbers exist.

// RewardPayout would return the total reward plus bonus payout.
func (r *Requester) RewardPayout(ctx context.Context) (float64, error) {
	return 0, ErrStatsUnsupported
}

// ApprovalPercentage would return the percentage of assignments approved.
func (r *Requester) ApprovalPercentage(ctx context.Context) (float64, error) {
	return 0, ErrStatsUnsupported
}

// FeePayout would return the total paid to the marketplace in fees.
func (r *Requester) FeePayout(ctx context.Context) (float64, error) {
	return 0, ErrStatsUnsupported
}

// NumCreated would return the total number of HITs created.
func (r *Requester) NumCreated(ctx context.Context) (int, error) {
	return 0, ErrStatsUnsupported
}

// formatAmount renders a currency amount as a fixed-point decimal string
// with exactly two digits, the only form the service accepts.
func formatAmount(amount float64) string {
	return fmt.Sprintf("%0.2f", amount)
}
