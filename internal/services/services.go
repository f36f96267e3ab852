package services

import (
	"fmt"

	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/connections"
	"github.com/quillforge/quill/internal/infrastructure/generator"
	"github.com/quillforge/quill/internal/infrastructure/openai"
	"github.com/quillforge/quill/internal/infrastructure/redis"
	"github.com/quillforge/quill/internal/services/assistant"
	"github.com/quillforge/quill/internal/services/completion"
	"github.com/quillforge/quill/internal/services/status"
	"github.com/rs/zerolog/log"
)

type Services struct {
	assistantService  *assistant.Service
	completionService *completion.Service
	statusService     *status.Service
	connectionManager *connections.Manager
	redisService      *redis.Service
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	// Initialize Redis service (optional, backs the rate limiter)
	redisService := redis.NewService()

	backend := selectBackend()

	// Initialize completion service (required)
	completionService, err := completion.NewService(backend)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize completion service - required for core functionality")
		return nil, fmt.Errorf("failed to initialize completion service: %w", err)
	}

	// Initialize status service and wire the WebSocket broadcaster to it
	statusService := status.NewService()
	connectionManager := connections.NewManager(connections.DefaultTimeouts)
	statusService.Subscribe(connectionManager.Broadcast)

	assistantService := assistant.NewService(completionService, statusService)

	log.Info().Msg("All services initialized successfully")

	return &Services{
		assistantService:  assistantService,
		completionService: completionService,
		statusService:     statusService,
		connectionManager: connectionManager,
		redisService:      redisService,
	}, nil
}

// selectBackend picks the generation backend from configuration, falling
// back to the local endpoint when the OpenAI backend is requested but not
// configured.
func selectBackend() completion.Backend {
	if config.GetGeneratorBackend() == config.BackendOpenAI {
		if svc := openai.NewService(); svc != nil {
			log.Info().Msg("Using OpenAI generation backend")
			return svc
		}
		log.Warn().Msg("OpenAI backend requested but not configured - falling back to local generator")
	}
	return generator.NewService()
}

// GetAssistantService returns the completion orchestrator
func (s *Services) GetAssistantService() *assistant.Service {
	return s.assistantService
}

// GetStatusService returns the status controller
func (s *Services) GetStatusService() *status.Service {
	return s.statusService
}

// GetConnectionManager returns the status WebSocket connection manager
func (s *Services) GetConnectionManager() *connections.Manager {
	return s.connectionManager
}

// GetRedisService returns the optional Redis service, or nil when unconfigured
func (s *Services) GetRedisService() *redis.Service {
	return s.redisService
}
