package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/quantdash/internal/api"
	"github.com/wonny/quantdash/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 스냅샷/추세 분석 엔드포인트 제공

Endpoints:
  GET  /health                 - Health check
  GET  /api/dates              - 스냅샷 날짜 목록
  GET  /api/rankings/latest    - 최신 랭킹
  GET  /api/rankings/{date}    - 특정일 랭킹
  GET  /api/pipeline           - 추세 검증 파이프라인
  GET  /api/picks              - 가중 랭킹 종목 선정
  GET  /api/deathlist          - Top-N 이탈 종목
  GET  /api/grades             - 팩터 등급
  GET  /api/history[/{ticker}] - 순위 히스토리

Example:
  go run ./cmd/quantdash api
  go run ./cmd/quantdash api --port 8001`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT env)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== QuantDash API Server ===")

	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	// Override port if flag is set
	if apiPort != "" {
		d.cfg.Port = apiPort
	}

	d.log.WithFields(map[string]interface{}{
		"port": d.cfg.Port,
		"env":  d.cfg.Env,
	}).Info("Initializing API server")

	// Handlers and router
	analyticsHandler := handlers.NewAnalyticsHandler(d.service, d.log)
	rankingHandler := handlers.NewRankingHandler(d.service, d.log)
	router := api.NewRouter(analyticsHandler, rankingHandler, d.cfg, d.log)

	server := api.New(d.cfg, d.log, router)

	// Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			d.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	d.log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	d.log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	d.log.Info("Server stopped")
	return nil
}
