package mturk

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) CreateHIT(ctx context.Context, input *CreateHITInput) (*CreateHITOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreateHITOutput), args.Error(1)
}

func (m *MockClient) UpdateExpirationForHIT(ctx context.Context, hitID string, expireAt time.Time) error {
	args := m.Called(ctx, hitID, expireAt)
	return args.Error(0)
}

func (m *MockClient) ApproveAssignment(ctx context.Context, assignmentID, feedback string) error {
	args := m.Called(ctx, assignmentID, feedback)
	return args.Error(0)
}

func (m *MockClient) RejectAssignment(ctx context.Context, assignmentID, feedback string) error {
	args := m.Called(ctx, assignmentID, feedback)
	return args.Error(0)
}

func (m *MockClient) SendBonus(ctx context.Context, workerID, assignmentID, amount, reason string) error {
	args := m.Called(ctx, workerID, assignmentID, amount, reason)
	return args.Error(0)
}

func (m *MockClient) CreateWorkerBlock(ctx context.Context, workerID, reason string) error {
	args := m.Called(ctx, workerID, reason)
	return args.Error(0)
}

func (m *MockClient) DeleteWorkerBlock(ctx context.Context, workerID, reason string) error {
	args := m.Called(ctx, workerID, reason)
	return args.Error(0)
}

func (m *MockClient) NotifyWorkers(ctx context.Context, subject, message string, workerIDs []string) error {
	args := m.Called(ctx, subject, message, workerIDs)
	return args.Error(0)
}

func (m *MockClient) GetAccountBalance(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
