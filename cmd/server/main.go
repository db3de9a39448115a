package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain/services"
	"github.com/murkotick/sales-record-service/internal/app/sales/queries"
	"github.com/murkotick/sales-record-service/internal/app/sales/queries/get_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/repo"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/create_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/update_sale"
	"github.com/murkotick/sales-record-service/internal/pkg/clock"
	committer "github.com/murkotick/sales-record-service/internal/pkg/committer"
	httpsales "github.com/murkotick/sales-record-service/internal/transport/http/sales"
)

func main() {
	addr := env("HTTP_ADDR", ":8080")
	spannerDB := env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db")

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Error("spanner client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	clk := clock.RealClock{}
	saleRepo := repo.NewSaleRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	discounts := services.DefaultSelector()

	// CQRS wiring
	cmds := httpsales.Commands{
		Create: create_sale.NewInteractor(saleRepo, outboxRepo, cm, discounts, clk),
		Update: update_sale.NewInteractor(saleRepo, outboxRepo, cm, readModel, clk),
	}
	qrys := httpsales.Queries{
		Get: get_sale.NewHandler(readModel),
	}
	h := httpsales.NewHandler(cmds, qrys, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	h.RegisterRoutes(router.Group("/api/v1"))

	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}

	log.Info("server stopped")
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
