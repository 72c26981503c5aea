package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alfatih-backend/internal/config"
	"alfatih-backend/internal/db"
	router "alfatih-backend/internal/http"
	"alfatih-backend/internal/storage"
	"alfatih-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	defer func() { _ = logger.L.Sync() }()

	conn := config.ConnectDB(env)
	defer config.CloseDB()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("Gagal menyiapkan skema database: %v", err)
	}

	store, err := storage.NewLocalStore(env.StorageDir, env.PublicBaseURL)
	if err != nil {
		log.Fatalf("Gagal menyiapkan penyimpanan berkas: %v", err)
	}

	r := router.NewRouter(env, conn, store)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
