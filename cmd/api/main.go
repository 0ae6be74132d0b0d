package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus/internal/common"
	"campus/internal/env"
	"campus/internal/storage"
	"campus/internal/v0/announcements"
	"campus/internal/v0/events"
	"campus/internal/v0/files"
	"campus/internal/v0/menu"
	"campus/internal/v0/notifications"
	"campus/internal/v0/schedule"
	"campus/internal/v0/support"
	"campus/internal/v0/transport"
	"campus/internal/webhook"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Portal database
	portalDB, err := sql.Open("sqlite3", env.GetEnv(env.EnvPortalDBPath, "./internal/databases/portal.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer portalDB.Close()

	// Enable WAL mode for better concurrent performance
	if _, err := portalDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		log.Printf("Warning: Failed to enable WAL mode: %v", err)
	}

	slot := storage.NewSQLSlot(portalDB)

	// Entity stores, each over its own slot key
	announcementStore := announcements.NewStore(slot)
	eventStore := events.NewStore(slot)
	menuStore := menu.NewStore(slot)
	scheduleStore := schedule.NewStore(slot)
	transportStore := transport.NewStore(slot)
	fileStore := files.NewStore(slot)
	notificationStore := notifications.NewStore(slot)
	supportStore := support.NewStore(slot)

	router := gin.Default()

	// Global routes
	global := router.Group("/api")
	common.RegisterRoutes(global)

	// v0 API routes
	v0Group := router.Group("/api/v0")
	{
		announcements.RegisterRoutes(v0Group, announcements.NewHandler(announcementStore))
		events.RegisterRoutes(v0Group, events.NewHandler(eventStore))
		menu.RegisterRoutes(v0Group, menu.NewHandler(menuStore))
		schedule.RegisterRoutes(v0Group, schedule.NewHandler(scheduleStore))
		transport.RegisterRoutes(v0Group, transport.NewHandler(transportStore))
		files.RegisterRoutes(v0Group, files.NewHandler(fileStore))
		notifications.RegisterRoutes(v0Group, notifications.NewHandler(notificationStore))
		support.RegisterRoutes(v0Group, support.NewHandler(supportStore))
	}

	// Chatbot fulfillment, fed live menu and ring data
	if env.GetBool(env.EnvWebhookEnabled, true) {
		dispatcher := webhook.NewDispatcher(menuStore, transportStore)
		webhook.RegisterRoutes(global, webhook.NewHandler(dispatcher))
	}

	server := &http.Server{
		Addr:    env.GetEnv(env.EnvAPIAddr, ":9237"),
		Handler: router,
	}

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

/*
This project is the monolithic backend API for the Smart Campus portal. Announcements, events, dining menus, course schedules, transport, file sharing, notifications and the campus chatbot webhook for our apps.
API Copyright (C) 2025 Smart Campus
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
