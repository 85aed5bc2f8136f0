package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/approve_reservation"
	cancelReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/cancel_reservation"
	createBanHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/create_ban"
	createBuildingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/create_building"
	createReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/create_room"
	deleteBuildingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/delete_building"
	deleteRoomHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/delete_room"
	editReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/edit_reservation"
	extendBanHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/extend_ban"
	getBuildingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_building"
	getFacilityConfigHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_facility_config"
	getFloorOverviewHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_floor_overview"
	getLeaderboardHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_leaderboard"
	getMyReservationsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_my_reservations"
	getReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_reservation"
	getReviewQueueHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_review_queue"
	getRoomHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_room"
	getRoomTimelineHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_room_timeline"
	getUserBansHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_user_bans"
	listBansHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/list_bans"
	listBuildingsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/list_buildings"
	listFloorsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/list_floors"
	listRoomsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/list_rooms"
	rejectReservationHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/reject_reservation"
	revokeBanHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/revoke_ban"
	setBuildingEnabledHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/set_building_enabled"
	setRoomEnabledHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/set_room_enabled"
	updateBuildingHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/update_building"
	updateFacilityConfigHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/update_facility_config"
	updateRoomHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/authz"
	"github.com/m04kA/SMC-FacilityService/internal/config"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	banRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/ban"
	catalogRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/catalog"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
	accessServiceClient "github.com/m04kA/SMC-FacilityService/internal/integrations/accessservice"
	auditServiceClient "github.com/m04kA/SMC-FacilityService/internal/integrations/auditservice"
	bansService "github.com/m04kA/SMC-FacilityService/internal/service/bans"
	catalogService "github.com/m04kA/SMC-FacilityService/internal/service/catalog"
	facilityService "github.com/m04kA/SMC-FacilityService/internal/service/facility"
	reservationsService "github.com/m04kA/SMC-FacilityService/internal/service/reservations"
	usageService "github.com/m04kA/SMC-FacilityService/internal/service/usage"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	approveReservationUC "github.com/m04kA/SMC-FacilityService/internal/usecase/approve_reservation"
	createReservationUC "github.com/m04kA/SMC-FacilityService/internal/usecase/create_reservation"
	editReservationUC "github.com/m04kA/SMC-FacilityService/internal/usecase/edit_reservation"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/logger"
	"github.com/m04kA/SMC-FacilityService/pkg/metrics"
	"github.com/m04kA/SMC-FacilityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FacilityService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики (nil, если выключены: все потребители это допускают)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)
	clk := clock.Real{}

	// Интеграционные клиенты
	accessClient := accessServiceClient.NewClient(
		cfg.AccessService.URL,
		time.Duration(cfg.AccessService.Timeout)*time.Second,
		log,
	)
	auditClient := auditServiceClient.NewClient(
		cfg.AuditService.URL,
		time.Duration(cfg.AuditService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AccessService=%s timeout=%ds, AuditService=%s timeout=%ds)",
		cfg.AccessService.URL, cfg.AccessService.Timeout, cfg.AuditService.URL, cfg.AuditService.Timeout)

	guard := authz.NewGuard(accessClient, log)
	auditor := audit.NewRecorder(auditClient, clk, log)

	// Репозитории
	buildingRepository := catalogRepo.NewBuildingRepository(wrappedDB)
	roomRepository := catalogRepo.NewRoomRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	banRepository := banRepo.NewRepository(wrappedDB)
	facilityRepository := facilityRepo.NewRepository(wrappedDB)

	// Сервисы
	catalogSvc := catalogService.NewService(
		buildingRepository,
		roomRepository,
		reservationRepository,
		guard,
		auditor,
		txManager,
		clk,
		log,
	)
	facilitySvc := facilityService.NewService(
		facilityRepository,
		guard,
		auditor,
		txManager,
		clk,
		domain.FacilityConfig{
			AuditRequired:    cfg.Facility.DefaultAuditRequired,
			MaxDurationHours: cfg.Facility.DefaultMaxDurationHours,
		},
		log,
	)
	bansSvc := bansService.NewService(
		banRepository,
		guard,
		auditor,
		txManager,
		clk,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		guard,
		auditor,
		metricsCollector,
		txManager,
		clk,
		log,
	)
	usageSvc := usageService.NewService(
		buildingRepository,
		roomRepository,
		reservationRepository,
		txManager,
		clk,
		usageService.Options{
			LeaderboardDays:  cfg.Aggregation.LeaderboardDays,
			LeaderboardLimit: cfg.Aggregation.LeaderboardLimit,
			MaxOverviewDays:  cfg.Aggregation.MaxOverviewDays,
		},
		log,
	)

	// Use cases
	checker := admission.NewChecker(
		roomRepository,
		reservationRepository,
		bansSvc,
		txManager,
		metricsCollector,
		clk,
		cfg.Admission.MaxHorizonDays,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		checker,
		facilitySvc,
		auditor,
		metricsCollector,
		log,
	)
	editReservationUseCase := editReservationUC.NewUseCase(
		reservationRepository,
		checker,
		facilitySvc,
		auditor,
		metricsCollector,
		log,
	)
	approveReservationUseCase := approveReservationUC.NewUseCase(
		reservationRepository,
		checker,
		guard,
		auditor,
		metricsCollector,
		log,
	)

	// Handlers
	listBuildings := listBuildingsHandler.NewHandler(catalogSvc, log)
	getBuilding := getBuildingHandler.NewHandler(catalogSvc, log)
	createBuilding := createBuildingHandler.NewHandler(catalogSvc, log)
	updateBuilding := updateBuildingHandler.NewHandler(catalogSvc, log)
	deleteBuilding := deleteBuildingHandler.NewHandler(catalogSvc, log)
	setBuildingEnabled := setBuildingEnabledHandler.NewHandler(catalogSvc, log)
	listFloors := listFloorsHandler.NewHandler(catalogSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	createRoom := createRoomHandler.NewHandler(catalogSvc, log)
	getRoom := getRoomHandler.NewHandler(catalogSvc, log)
	updateRoom := updateRoomHandler.NewHandler(catalogSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(catalogSvc, log)
	setRoomEnabled := setRoomEnabledHandler.NewHandler(catalogSvc, log)

	getFacilityConfig := getFacilityConfigHandler.NewHandler(facilitySvc, log)
	updateFacilityConfig := updateFacilityConfigHandler.NewHandler(facilitySvc, log)

	listBans := listBansHandler.NewHandler(bansSvc, log)
	createBan := createBanHandler.NewHandler(bansSvc, log)
	revokeBan := revokeBanHandler.NewHandler(bansSvc, log)
	extendBan := extendBanHandler.NewHandler(bansSvc, log)
	getUserBans := getUserBansHandler.NewHandler(bansSvc, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	editReservation := editReservationHandler.NewHandler(editReservationUseCase, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getMyReservations := getMyReservationsHandler.NewHandler(reservationsSvc, log)
	getReviewQueue := getReviewQueueHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	rejectReservation := rejectReservationHandler.NewHandler(reservationsSvc, log)

	getFloorOverview := getFloorOverviewHandler.NewHandler(usageSvc, log)
	getRoomTimeline := getRoomTimelineHandler.NewHandler(usageSvc, log)
	getLeaderboard := getLeaderboardHandler.NewHandler(usageSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Все маршруты API требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Каталог ---
	api.HandleFunc("/buildings", listBuildings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/buildings", createBuilding.Handle).Methods(http.MethodPost)
	api.HandleFunc("/buildings/{id}", getBuilding.Handle).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}", updateBuilding.Handle).Methods(http.MethodPut)
	api.HandleFunc("/buildings/{id}", deleteBuilding.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/buildings/{id}/enabled", setBuildingEnabled.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/buildings/{id}/floors", listFloors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}/floors/{floorNo:-?[0-9]+}/overview", getFloorOverview.Handle).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", deleteRoom.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{id}/enabled", setRoomEnabled.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{id}/timeline", getRoomTimeline.Handle).Methods(http.MethodGet)

	// --- Конфигурация ---
	api.HandleFunc("/facility/config", getFacilityConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facility/config", updateFacilityConfig.Handle).Methods(http.MethodPut)

	// --- Баны ---
	api.HandleFunc("/bans", listBans.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bans", createBan.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bans/{id}/revoke", revokeBan.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bans/{id}/extend", extendBan.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/bans", getUserBans.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// /mine и /review регистрируются раньше /{id}
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/mine", getMyReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/review", getReviewQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", editReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id}/approve", approveReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id}/reject", rejectReservation.Handle).Methods(http.MethodPatch)

	// --- Статистика ---
	api.HandleFunc("/leaderboard", getLeaderboard.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
