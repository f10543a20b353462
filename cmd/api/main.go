package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/mtbtransit/timeslip-backend-go/internal/config"
	appHTTP "github.com/mtbtransit/timeslip-backend-go/internal/handler/http"
	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/slippdf"
	reportService "github.com/mtbtransit/timeslip-backend-go/internal/service/report"
	rosterService "github.com/mtbtransit/timeslip-backend-go/internal/service/roster"
	slipService "github.com/mtbtransit/timeslip-backend-go/internal/service/slip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "timeslip-backend"),
		slog.String("env", cfg.App.Env),
	)

	template, err := slippdf.LoadTemplate(cfg.Slip.TemplatePath)
	if err != nil {
		log.Fatal("Failed to load slip template: ", err)
	}
	composer := slippdf.NewComposer(template, logger)

	rosterSvc := rosterService.NewRosterService()
	reportSvc := reportService.NewReportService(cfg.Slip.DeptCode)
	slipSvc := slipService.NewSlipService(composer, reportSvc, cfg.Slip.DeptCode, logger)

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	slipHandler := appHTTP.NewSlipHandler(slipSvc)

	router := appHTTP.NewRouter(cfg.App, rosterHandler, slipHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
