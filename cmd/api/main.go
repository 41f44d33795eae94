package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
	"github.com/zuchi/dashboard-api/infrastructure/repository"
	"github.com/zuchi/dashboard-api/internal/api"
	"github.com/zuchi/dashboard-api/internal/config"
	"github.com/zuchi/dashboard-api/internal/scheduler"
	"github.com/zuchi/dashboard-api/internal/usecases/administrating"
	"github.com/zuchi/dashboard-api/internal/usecases/ingesting"
	"github.com/zuchi/dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	memberRepo := repository.NewMemberRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)

	archive := ingesting.NewArchive(cfg.Cashier.ArchiveDir)

	reportService := reporting.NewService(storeRepo, transactionRepo, memberRepo, revenueRepo)
	ingestService := ingesting.NewService(storeRepo, transactionRepo, archive)
	adminService := administrating.NewService(storeRepo, transactionRepo, memberRepo, revenueRepo)

	archiveRetentionService := scheduler.NewArchiveRetentionService(archive, cfg)

	if err := archiveRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do arquivo de payloads")
	} else {
		logrus.Info("Agendador de limpeza do arquivo de payloads iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		ingestService,
		adminService,
		archiveRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
