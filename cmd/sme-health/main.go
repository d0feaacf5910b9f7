package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driven/records"
	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driving/web"
	"github.com/diillson/sme-health-dashboard-go/internal/application/usecase"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/diillson/sme-health-dashboard-go/pkg/console"
	"github.com/diillson/sme-health-dashboard-go/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional; variáveis já exportadas têm precedência.
	_ = godotenv.Load()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		records.NewRecordRepository,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)
	app.SetServeFunc(func(ctx context.Context, args *types.ServeArgs) error {
		logger := web.NewLogger(args.LogLevel)
		return web.NewServer(logger).ListenAndServe(ctx, args.Addr)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
