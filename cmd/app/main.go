package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/config"
	"github.com/bagdasarian/taskboard/internal/db"
	"github.com/bagdasarian/taskboard/internal/handler"
	"github.com/bagdasarian/taskboard/internal/handler/server"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	hasher := auth.NewHasher(cfg.BcryptCost)
	authenticator := auth.NewAuthenticator(userRepo, hasher)

	authService := service.NewAuthService(database, userRepo, teamRepo, hasher)
	userService := service.NewUserService(database, userRepo, boardRepo, authenticator)
	boardService := service.NewBoardService(database, boardRepo, teamRepo, authenticator)
	columnService := service.NewColumnService(database, boardRepo, userRepo, authenticator)
	taskService := service.NewTaskService(database, taskRepo, boardRepo, userRepo, authenticator)
	stateService := service.NewStateService(userRepo, teamRepo, boardRepo, taskRepo, authenticator)

	h := handler.NewHandler(authService, userService, boardService, columnService, taskService, stateService)
	srv := server.NewServer(h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
