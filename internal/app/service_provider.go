package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	authAPI "sponsor_backend/internal/api/auth"
	familyAPI "sponsor_backend/internal/api/family"
	"sponsor_backend/internal/api/middleware"
	reportAPI "sponsor_backend/internal/api/report"
	schemaAPI "sponsor_backend/internal/api/schema"
	sponsorAPI "sponsor_backend/internal/api/sponsor"
	"sponsor_backend/internal/config"
	"sponsor_backend/internal/config/env"
	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/repository/family_repo"
	"sponsor_backend/internal/repository/report_repo"
	"sponsor_backend/internal/repository/schema_repo"
	"sponsor_backend/internal/repository/sponsor_repo"
	"sponsor_backend/internal/service"
	authServ "sponsor_backend/internal/service/auth"
	familyServ "sponsor_backend/internal/service/family"
	reportServ "sponsor_backend/internal/service/report"
	schemaServ "sponsor_backend/internal/service/schema"
	sponsorServ "sponsor_backend/internal/service/sponsor"
	"sponsor_backend/pkg/googleid"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Configs
	jwtConfig    config.JWTConfig
	googleConfig config.GoogleConfig
	appConfig    config.AppConfig
	httpCfg      config.HTTPConfig

	// Logger
	logger *logrus.Logger

	// Auth bits
	verifier service.GoogleVerifier
	authMW   *middleware.AuthMiddleware
	authServ service.AuthService
	authHand *authAPI.Handler

	// Sponsor bits
	sponsorRepo repository.SponsorRepository
	sponsorServ service.SponsorService
	sponsorHand *sponsorAPI.Handler

	// Family bits
	familyRepo repository.FamilyMemberRepository
	familyServ service.FamilyService
	familyHand *familyAPI.Handler

	// Report bits
	reportRepo repository.ReportRepository
	reportServ service.ReportService
	reportHand *reportAPI.Handler

	// Schema bits
	schemaRepo repository.SchemaRepository
	schemaServ service.SchemaService
	schemaHand *schemaAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db config: " + err.Error())
		}
		poolCfg.MaxConns = sp.PgConfig().MaxConns()

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) GoogleConfig() config.GoogleConfig {
	if sp.googleConfig == nil {
		cfg, err := env.NewGoogleConfig()
		if err != nil {
			panic("failed to get google config: " + err.Error())
		}
		sp.googleConfig = cfg
	}
	return sp.googleConfig
}

func (sp *ServiceProvider) AppConfig() config.AppConfig {
	if sp.appConfig == nil {
		cfg, err := env.NewAppConfig()
		if err != nil {
			panic("failed to get app config: " + err.Error())
		}
		sp.appConfig = cfg
	}
	return sp.appConfig
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	if sp.logger == nil {
		logger := logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		if !sp.AppConfig().IsProduction() {
			logger.SetLevel(logrus.DebugLevel)
		}
		sp.logger = logger
	}
	return sp.logger
}

func (sp *ServiceProvider) GoogleVerifier() service.GoogleVerifier {
	if sp.verifier == nil {
		sp.verifier = googleid.NewVerifier(sp.GoogleConfig().ClientID())
	}
	return sp.verifier
}

func (sp *ServiceProvider) AuthMiddleware() *middleware.AuthMiddleware {
	if sp.authMW == nil {
		sp.authMW = middleware.NewAuthMiddleware(sp.JWTConfig().SessionTokenSecretKey(), sp.Logger())
	}
	return sp.authMW
}

func (sp *ServiceProvider) SponsorRepository(ctx context.Context) repository.SponsorRepository {
	if sp.sponsorRepo == nil {
		sp.sponsorRepo = sponsor_repo.NewSponsorRepository(sp.DBClient(ctx))
	}
	return sp.sponsorRepo
}

func (sp *ServiceProvider) FamilyMemberRepository(ctx context.Context) repository.FamilyMemberRepository {
	if sp.familyRepo == nil {
		sp.familyRepo = family_repo.NewFamilyMemberRepository(sp.DBClient(ctx))
	}
	return sp.familyRepo
}

func (sp *ServiceProvider) ReportRepository(ctx context.Context) repository.ReportRepository {
	if sp.reportRepo == nil {
		sp.reportRepo = report_repo.NewReportRepository(sp.DBClient(ctx))
	}
	return sp.reportRepo
}

func (sp *ServiceProvider) SchemaRepository(ctx context.Context) repository.SchemaRepository {
	if sp.schemaRepo == nil {
		sp.schemaRepo = schema_repo.NewSchemaRepository(sp.DBClient(ctx))
	}
	return sp.schemaRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewService(
			sp.TXManager(ctx),
			sp.SponsorRepository(ctx),
			sp.GoogleVerifier(),
			sp.JWTConfig(),
			sp.AppConfig().AdminEmails(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) SponsorService(ctx context.Context) service.SponsorService {
	if sp.sponsorServ == nil {
		sp.sponsorServ = sponsorServ.NewService(sp.SponsorRepository(ctx))
	}
	return sp.sponsorServ
}

func (sp *ServiceProvider) FamilyService(ctx context.Context) service.FamilyService {
	if sp.familyServ == nil {
		sp.familyServ = familyServ.NewService(sp.FamilyMemberRepository(ctx))
	}
	return sp.familyServ
}

func (sp *ServiceProvider) ReportService(ctx context.Context) service.ReportService {
	if sp.reportServ == nil {
		sp.reportServ = reportServ.NewService(sp.ReportRepository(ctx))
	}
	return sp.reportServ
}

func (sp *ServiceProvider) SchemaService(ctx context.Context) service.SchemaService {
	if sp.schemaServ == nil {
		sp.schemaServ = schemaServ.NewService(sp.SchemaRepository(ctx))
	}
	return sp.schemaServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:  sp.AuthService(ctx),
			Log:   sp.Logger(),
			Debug: !sp.AppConfig().IsProduction(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SponsorHandler(ctx context.Context) *sponsorAPI.Handler {
	if sp.sponsorHand == nil {
		sp.sponsorHand = sponsorAPI.NewHandler(sponsorAPI.HandlerDeps{
			Serv:  sp.SponsorService(ctx),
			Log:   sp.Logger(),
			Debug: !sp.AppConfig().IsProduction(),
		})
	}
	return sp.sponsorHand
}

func (sp *ServiceProvider) FamilyHandler(ctx context.Context) *familyAPI.Handler {
	if sp.familyHand == nil {
		sp.familyHand = familyAPI.NewHandler(familyAPI.HandlerDeps{
			Serv:  sp.FamilyService(ctx),
			Log:   sp.Logger(),
			Debug: !sp.AppConfig().IsProduction(),
		})
	}
	return sp.familyHand
}

func (sp *ServiceProvider) ReportHandler(ctx context.Context) *reportAPI.Handler {
	if sp.reportHand == nil {
		sp.reportHand = reportAPI.NewHandler(reportAPI.HandlerDeps{
			Serv:  sp.ReportService(ctx),
			Log:   sp.Logger(),
			Debug: !sp.AppConfig().IsProduction(),
		})
	}
	return sp.reportHand
}

func (sp *ServiceProvider) SchemaHandler(ctx context.Context) *schemaAPI.Handler {
	if sp.schemaHand == nil {
		sp.schemaHand = schemaAPI.NewHandler(schemaAPI.HandlerDeps{
			Serv:  sp.SchemaService(ctx),
			Log:   sp.Logger(),
			Debug: !sp.AppConfig().IsProduction(),
		})
	}
	return sp.schemaHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestLogger(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{sp.AppConfig().AllowedOrigin()},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authMW := sp.AuthMiddleware()
		authHandler := sp.AuthHandler(ctx)
		sponsorHandler := sp.SponsorHandler(ctx)
		familyHandler := sp.FamilyHandler(ctx)

		r.Route("/api", func(rr chi.Router) {
			rr.Post("/auth/google", authHandler.Login)

			rr.Group(func(pr chi.Router) {
				pr.Use(authMW.RequireSession)
				pr.Get("/protected", authHandler.Protected)
				pr.Post("/sponsors", sponsorHandler.Create)
				pr.Post("/family-members", familyHandler.Create)
			})
		})

		// Admin endpoints
		reportHandler := sp.ReportHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(authMW.RequireAdmin)
			rr.Get("/sponsors", reportHandler.Sponsors)
			rr.Get("/family-members", reportHandler.FamilyMembers)
			rr.Get("/search", reportHandler.Search)
		})

		// Ручки для создания схемы доступны только вне production
		if !sp.AppConfig().IsProduction() {
			schemaHandler := sp.SchemaHandler(ctx)
			r.Get("/createdb", schemaHandler.CreateDatabase)
			r.Get("/create-sponsors-table", schemaHandler.CreateSponsorsTable)
			r.Get("/create-family-members-table", schemaHandler.CreateFamilyMembersTable)
		}

		sp.router = r
	}

	return sp.router
}
