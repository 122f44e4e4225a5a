package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRunResultMessage returns a title and flavor line for a finished run
	GetRunResultMessage(ctx context.Context, input *GetRunResultMessageInput) (*GetRunResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
