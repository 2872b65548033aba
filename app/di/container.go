package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/config"
	"backoffice-service/app/domain"
	"backoffice-service/app/driver/postgres"
	"backoffice-service/app/driver/token"
	"backoffice-service/app/port"
	"backoffice-service/app/rest"
	"backoffice-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Repositories
	AdminRepo   port.AdminRepository
	SessionRepo port.SessionRepository
	AuditRepo   port.AuditRepository
	ProjectRepo port.ProjectRequestRepository
	ContactRepo port.ContactRepository

	// Usecases
	AuthUsecase    port.AuthUsecase
	InquiryUsecase port.InquiryUsecase
	AuditRecorder  port.AuditRecorder
}

// NewContainer creates and initializes a new dependency injection
// container. All configuration flows in here once; components never
// read ambient state.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pool := container.DB.Pool()
	container.AdminRepo = postgres.NewAdminRepository(pool, logger)
	container.SessionRepo = postgres.NewSessionRepository(pool, logger)
	container.AuditRepo = postgres.NewAuditRepository(pool, logger)
	container.ProjectRepo = postgres.NewProjectRequestRepository(pool, logger)
	container.ContactRepo = postgres.NewContactRepository(pool, logger)

	container.AuditRecorder = usecase.NewAuditRecorder(container.AuditRepo, logger)

	verifier := buildCredentialVerifier(cfg, container.AdminRepo, logger)
	issuer, tokenVerifier, revoker := buildTokenComponents(cfg, container.SessionRepo, container.AdminRepo, logger)

	container.AuthUsecase = usecase.NewAuthUsecase(
		verifier,
		issuer,
		tokenVerifier,
		revoker,
		container.AdminRepo,
		container.AuditRecorder,
		logger,
	)

	container.InquiryUsecase = usecase.NewInquiryUsecase(
		container.ProjectRepo,
		container.ContactRepo,
		container.AuditRecorder,
		logger,
	)

	logger.Info("container initialized",
		"auth_mode", cfg.AuthMode,
		"bootstrap_admin", cfg.HasBootstrapAdmin())

	return container, nil
}

// buildCredentialVerifier assembles the ordered strategy chain: the
// static bootstrap pair first when configured, persisted admins second
func buildCredentialVerifier(cfg *config.Config, admins port.AdminRepository, logger *slog.Logger) port.CredentialVerifier {
	verifiers := make([]port.CredentialVerifier, 0, 2)

	if cfg.HasBootstrapAdmin() {
		verifiers = append(verifiers, usecase.NewStaticCredentialVerifier(
			cfg.AdminIdentifier,
			cfg.AdminSecret,
			cfg.AdminDisplayName,
		))
	}

	verifiers = append(verifiers, usecase.NewStoreCredentialVerifier(admins, logger))

	return usecase.NewVerifierChain(verifiers...)
}

// buildTokenComponents wires the bearer token variant selected by
// configuration
func buildTokenComponents(cfg *config.Config, sessions port.SessionRepository, admins port.AdminRepository, logger *slog.Logger) (port.TokenIssuer, port.TokenVerifier, port.SessionRevoker) {
	if cfg.AuthMode == config.AuthModeJWT {
		jwtCfg := token.JWTConfig{
			Secret: cfg.JWTSecret,
			Issuer: cfg.JWTIssuer,
			TTL:    cfg.TokenTTL,
		}
		return token.NewJWTIssuer(jwtCfg), token.NewJWTVerifier(jwtCfg), token.NewNoopRevoker(logger)
	}

	sessionIssuer := token.NewSessionIssuer(sessions, cfg.TokenTTL, logger)
	sessionVerifier := token.NewSessionVerifier(sessions, admins, bootstrapIdentity(cfg), logger)
	return sessionIssuer, sessionVerifier, sessionIssuer
}

func bootstrapIdentity(cfg *config.Config) *domain.Identity {
	if !cfg.HasBootstrapAdmin() {
		return nil
	}
	return &domain.Identity{
		ID:          domain.BootstrapAdminID,
		DisplayName: cfg.AdminDisplayName,
		Role:        domain.RoleAdmin,
	}
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		InquiryUsecase: c.InquiryUsecase,
		AuditRepo:      c.AuditRepo,
		SessionRepo:    c.SessionRepo,
		DB:             c.DB,
		DevMode:        c.Config.IsDevelopment(),
	}

	return rest.NewRouter(routerConfig)
}

// StartSessionCleanup runs periodic expired-session deletion in session
// mode. Returns a stop function.
func (c *Container) StartSessionCleanup(interval time.Duration) func() {
	if c.Config.AuthMode != config.AuthModeSession {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if _, err := c.SessionRepo.DeleteExpired(ctx); err != nil {
					c.Logger.Warn("session cleanup failed", "error", err)
				}
				cancel()
			}
		}
	}()

	return func() { close(done) }
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
