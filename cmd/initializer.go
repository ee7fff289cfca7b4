package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"broconnect/internal/config"
	"broconnect/internal/handlers"
	"broconnect/internal/repositories"
	"broconnect/internal/services"
	"broconnect/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	signingKey string

	userRepo *repositories.UserRepository
	tokens   *utils.Manager

	userHandler         *handlers.UserHandler
	complaintHandler    *handlers.ComplaintHandler
	messageHandler      *handlers.MessageHandler
	groupMessageHandler *handlers.GroupMessageHandler
	notificationHandler *handlers.NotificationHandler
	pollHandler         *handlers.PollHandler
	assistantHandler    *handlers.AssistantHandler
	adminHandler        *handlers.AdminHandler

	wsManager *WebSocketManager
	db        *sql.DB
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	complaintRepo := repositories.ComplaintRepository{DB: db}
	messageRepo := repositories.MessageRepository{DB: db}
	groupMessageRepo := repositories.GroupMessageRepository{DB: db}
	notificationRepo := repositories.NotificationRepository{DB: db}
	pollRepo := repositories.PollRepository{DB: db}

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	realtime := &services.RealtimePublisher{Redis: rdb}

	var storage services.Uploader
	if cfg.Storage.Bucket != "" {
		storage = utils.NewS3Storage(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.Region,
			cfg.Storage.Endpoint,
			cfg.Storage.Bucket,
			cfg.Storage.PublicURL,
		)
	}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokens}
	notificationService := &services.NotificationService{
		NotificationRepo: &notificationRepo,
		Realtime:         realtime,
		FCM:              newFCMClient(cfg.Firebase.CredentialsFile, infoLog),
	}
	complaintService := &services.ComplaintService{
		ComplaintRepo: &complaintRepo,
		UserRepo:      &userRepo,
		Notifications: notificationService,
		Storage:       storage,
	}
	messageService := &services.MessageService{
		MessageRepo:   &messageRepo,
		UserRepo:      &userRepo,
		Notifications: notificationService,
		Realtime:      realtime,
	}
	groupMessageService := &services.GroupMessageService{
		GroupRepo: &groupMessageRepo,
		UserRepo:  &userRepo,
		Realtime:  realtime,
	}
	pollService := &services.PollService{PollRepo: &pollRepo}
	assistantService := &services.AssistantService{
		Client: services.NewCompletionClient(
			&http.Client{Timeout: 30 * time.Second},
			cfg.Assistant.APIKey,
			cfg.Assistant.BaseURL,
			cfg.Assistant.Model,
		),
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	complaintHandler := &handlers.ComplaintHandler{Service: complaintService}
	messageHandler := &handlers.MessageHandler{Service: messageService}
	groupMessageHandler := &handlers.GroupMessageHandler{Service: groupMessageService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	pollHandler := &handlers.PollHandler{Service: pollService}
	assistantHandler := &handlers.AssistantHandler{Service: assistantService}
	adminHandler := &handlers.AdminHandler{Users: userService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		signingKey:          cfg.Auth.SigningKey,
		userRepo:            &userRepo,
		tokens:              tokens,
		userHandler:         userHandler,
		complaintHandler:    complaintHandler,
		messageHandler:      messageHandler,
		groupMessageHandler: groupMessageHandler,
		notificationHandler: notificationHandler,
		pollHandler:         pollHandler,
		assistantHandler:    assistantHandler,
		adminHandler:        adminHandler,
		wsManager:           NewWebSocketManager(),
		db:                  db,
	}
}

// newFCMClient returns nil when push is not configured; the notification
// service treats a nil client as "no push".
func newFCMClient(credentialsFile string, infoLog *log.Logger) *messaging.Client {
	if credentialsFile == "" {
		return nil
	}
	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		infoLog.Printf("firebase disabled: %v", err)
		return nil
	}
	client, err := app.Messaging(context.Background())
	if err != nil {
		infoLog.Printf("firebase messaging disabled: %v", err)
		return nil
	}
	return client
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	return db, nil
}
