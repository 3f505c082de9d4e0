package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/mthorsell/cashlens-backend/internal/bootstrap"
	"github.com/mthorsell/cashlens-backend/internal/config"
	"github.com/mthorsell/cashlens-backend/internal/handlers"
	"github.com/mthorsell/cashlens-backend/internal/response"
	"github.com/mthorsell/cashlens-backend/internal/router"
	"github.com/mthorsell/cashlens-backend/internal/services"
	"github.com/mthorsell/cashlens-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	nstore := store.NewNarrativeStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	txserv := services.NewTransactionService(tstore)
	dserv := services.NewDashboardService(tstore)
	nserv := services.NewNarrativeService(bs.VertexAdapter, dserv, nstore, cfg.NarrativeTTL)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = txserv
	deps.DashboardSvc = dserv
	deps.NarrativeSvc = nserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
