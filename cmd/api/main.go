package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/sampledata"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
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

	salesRepo := repository.NewSalesRecordRepository("sales", sampledata.Sales, domain.ParseOptions{})
	profitRepo := repository.NewSalesRecordRepository("profit", sampledata.Profit, domain.ParseOptions{AllowNegative: true})

	if len(salesRepo.AvailableYears()) == 0 {
		logrus.Fatal("Dataset de vendas sem registros válidos")
	}

	salesService := aggregating.NewService("sales", salesRepo)
	profitService := aggregating.NewService("profit", profitRepo)
	charter := charting.NewService(cfg)
	dashboardService := dashboard.NewService(salesService, profitService, charter, cfg)

	cleanupService := scheduler.NewSessionCleanupService(dashboardService, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de dashboards")
	} else {
		logrus.Info("Agendador de limpeza de dashboards iniciado com sucesso")
	}

	server, err := api.New(cfg, salesService, profitService, charter, dashboardService, cleanupService)
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
