package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"osta/internal/adapter/api"
	"osta/internal/adapter/api/handler"
	apimiddleware "osta/internal/adapter/api/middleware"
	"osta/internal/adapter/api/router"
	"osta/internal/adapter/repository"
	"osta/internal/infrastructure/auth"
	"osta/internal/infrastructure/ratelimit"
	"osta/internal/infrastructure/storage"
	"osta/internal/infrastructure/websocket"
	"osta/internal/usecase"
	"osta/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, firebaseApp, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	providerRepo := repository.NewFirestoreProviderRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	subcategoryRepo := repository.NewFirestoreSubcategoryRepository(firestoreClient)
	regionRepo := repository.NewFirestoreRegionRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	authUseCase := usecase.NewAuthUseCase(userRepo, providerRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	providerUseCase := usecase.NewProviderUseCase(providerRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, requestRepo, userRepo, providerRepo, cfg.ReviewMaxRating)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, chatRepo, userRepo, providerRepo, chatUseCase)
	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, subcategoryRepo, regionRepo, providerRepo)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	wsManager := websocket.NewManager(chatUseCase, limiter)
	wsManager.Start(ctx)

	handler.Setup(
		authUseCase,
		userUseCase,
		providerUseCase,
		requestUseCase,
		chatUseCase,
		catalogUseCase,
		storageClient,
		wsManager,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	adminMiddleware := apimiddleware.NewAdminMiddleware(cfg.AdminKey)

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
