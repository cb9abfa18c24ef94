package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/masterchiefff/jobfit-server/internal/analysis"
	"github.com/masterchiefff/jobfit-server/internal/cvs"
	"github.com/masterchiefff/jobfit-server/internal/jobs"
	"github.com/masterchiefff/jobfit-server/internal/shared/config"
	"github.com/masterchiefff/jobfit-server/internal/shared/server"
	"github.com/masterchiefff/jobfit-server/internal/shared/storage/db"
	"github.com/masterchiefff/jobfit-server/internal/shared/storage/object"
	localstore "github.com/masterchiefff/jobfit-server/internal/shared/storage/object/local"
	s3store "github.com/masterchiefff/jobfit-server/internal/shared/storage/object/s3"
	"github.com/masterchiefff/jobfit-server/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	DB          *sql.DB
	Store       object.ObjectStore
	Ruleset     *analysis.Ruleset
	CVRepo      cvs.Repo
	UserRepo    users.Repo
	JobRepo     jobs.Repo
	CVService   *cvs.Service
	UserService *users.Service
	JobService  *jobs.Service
	CVHandler   *cvs.Handler
	UserHandler *users.Handler
	JobHandler  *jobs.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ruleset, err := buildRuleset(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Store:   store,
		Ruleset: ruleset,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		CVHandler:   app.CVHandler,
		UserHandler: app.UserHandler,
		JobHandler:  app.JobHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildRuleset(cfg config.Config) (*analysis.Ruleset, error) {
	if len(cfg.AnalysisKeywords) == 0 {
		return analysis.DefaultRuleset(), nil
	}
	ruleset, err := analysis.NewRuleset(cfg.AnalysisKeywords, analysis.DefaultSections)
	if err != nil {
		return nil, fmt.Errorf("build ruleset: %w", err)
	}
	return ruleset, nil
}

func buildServices(app *App) {
	var cvRepo cvs.Repo
	var userRepo users.Repo
	var jobRepo jobs.Repo

	if app.DB != nil {
		cvRepo = &cvs.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
	} else {
		cvRepo = cvs.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
	}

	cvSvc := &cvs.Service{Ruleset: app.Ruleset, Repo: cvRepo}
	userSvc := users.NewService(userRepo, app.Store)
	jobSvc := &jobs.Service{Repo: jobRepo}

	app.CVRepo = cvRepo
	app.UserRepo = userRepo
	app.JobRepo = jobRepo
	app.CVService = cvSvc
	app.UserService = userSvc
	app.JobService = jobSvc
	app.CVHandler = cvs.NewHandler(cvSvc)
	app.UserHandler = users.NewHandler(userSvc)
	app.JobHandler = jobs.NewHandler(jobSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
