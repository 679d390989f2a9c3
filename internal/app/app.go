package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Jakealex/fantasy-league/internal/config"
	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
	"github.com/Jakealex/fantasy-league/internal/domain/player"
	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
	"github.com/Jakealex/fantasy-league/internal/domain/team"
	"github.com/Jakealex/fantasy-league/internal/infrastructure/repository/memory"
	"github.com/Jakealex/fantasy-league/internal/infrastructure/repository/postgres"
	"github.com/Jakealex/fantasy-league/internal/interfaces/httpapi"
	idgen "github.com/Jakealex/fantasy-league/internal/platform/id"
	"github.com/Jakealex/fantasy-league/internal/platform/logging"
	"github.com/Jakealex/fantasy-league/internal/usecase"
)

type repositories struct {
	gameweeks gameweek.Repository
	fixtures  fixture.Repository
	players   player.Repository
	teams     team.Repository
	scoring   scoring.Repository
}

// NewHTTPServer wires repositories, services, and the HTTP router into a
// ready-to-run server. The returned cleanup releases backing resources (the
// database pool when DB_URL is set) and must be called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeRepos, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	scoringSvc := usecase.NewScoringService(
		repos.gameweeks,
		repos.fixtures,
		repos.players,
		repos.teams,
		repos.scoring,
		logger,
		cfg.ScoringWorkerCount,
	)
	fixtureSvc := usecase.NewFixtureService(
		repos.fixtures,
		scoringSvc,
		idgen.NewRandomGenerator(),
		logger,
	)
	playerSvc := usecase.NewPlayerService(repos.players)

	handler := httpapi.NewHandler(scoringSvc, fixtureSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeRepos()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeRepos, nil
}

func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("repositories ready", "backend", "memory", "reason", "DB_URL empty")
		return repositories{
			gameweeks: memory.NewGameweekRepository(memory.SeedGameweeks()),
			fixtures:  memory.NewFixtureRepository(memory.SeedFixtures()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			teams:     memory.NewTeamRepository(memory.SeedTeams(), memory.SeedSquadSlots()),
			scoring:   memory.NewScoringRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("repositories ready", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		gameweeks: postgres.NewGameweekRepository(db),
		fixtures:  postgres.NewFixtureRepository(db),
		players:   postgres.NewPlayerRepository(db),
		teams:     postgres.NewTeamRepository(db),
		scoring:   postgres.NewScoringRepository(db),
	}, db.Close, nil
}
