package handler

import (
	"osta/internal/infrastructure/storage"
	"osta/internal/infrastructure/websocket"
	"osta/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	providerHandler  *ProviderHandler
	requestHandler   *RequestHandler
	chatHandler      *ChatHandler
	catalogHandler   *CatalogHandler
	fileHandler      *FileHandler
	websocketHandler *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	providerUseCase *usecase.ProviderUseCase,
	requestUseCase *usecase.RequestUseCase,
	chatUseCase *usecase.ChatUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	storageClient *storage.CloudStorageClient,
	wsManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	providerHandler = NewProviderHandler(providerUseCase)
	requestHandler = NewRequestHandler(requestUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	fileHandler = NewFileHandler(storageClient)
	websocketHandler = NewWebSocketHandler(wsManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProviderHandler() *ProviderHandler {
	return providerHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}
