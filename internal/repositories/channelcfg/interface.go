package channelcfg

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/alphie/internal/repositories/channelcfg Repository

// Repository defines the interface for the persisted allowed-channel setting
type Repository interface {
	// Set persists the channel the counting game is played in
	Set(ctx context.Context, input *SetInput) error

	// Get retrieves the allowed channel ID, or ErrNotConfigured when
	// no channel has been set
	Get(ctx context.Context) (string, error)
}

// SetInput contains parameters for setting the allowed channel
type SetInput struct {
	ChannelID string
}
