package handlers

import (
	"deutschprofi_backend/internal/service"
	"deutschprofi_backend/internal/ws"
)

// Handler держит зависимости HTTP-обработчиков
type Handler struct {
	Service *service.SessionService
	Hub     *ws.Hub
}

func NewHandler(svc *service.SessionService, hub *ws.Hub) *Handler {
	return &Handler{Service: svc, Hub: hub}
}
