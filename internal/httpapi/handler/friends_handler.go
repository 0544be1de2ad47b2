package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mediashelf/internal/httpapi/dto"
	"mediashelf/internal/httpapi/middleware"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type FriendsHandler struct {
	svc service.FriendshipService
}

func NewFriendsHandler(svc service.FriendshipService) *FriendsHandler {
	return &FriendsHandler{svc: svc}
}

func (h *FriendsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListFriends)
	rg.GET("/requests", h.ListRequests)
	rg.GET("/status/:user_id", h.StatusWith)
	rg.POST("/requests", h.SendRequest)
	rg.POST("/requests/accept", h.Accept)
	rg.POST("/requests/decline", h.Decline)
}

func (h *FriendsHandler) ListFriends(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	friends, err := h.svc.ListFriends(ctx, actor.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  friends,
		"total": len(friends),
	})
}

func (h *FriendsHandler) ListRequests(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	incoming, outgoing, err := h.svc.ListRequests(ctx, actor.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.FriendRequestsResponse{
		Incoming: make([]dto.IncomingFriendRequest, 0, len(incoming)),
		Outgoing: make([]dto.OutgoingFriendRequest, 0, len(outgoing)),
	}
	for _, req := range incoming {
		resp.Incoming = append(resp.Incoming, dto.IncomingFriendRequest{
			ID:        req.ID,
			From:      publicOrEmpty(req.FromUser),
			CreatedAt: req.CreatedAt,
		})
	}
	for _, req := range outgoing {
		resp.Outgoing = append(resp.Outgoing, dto.OutgoingFriendRequest{
			ID:        req.ID,
			To:        publicOrEmpty(req.ToUser),
			CreatedAt: req.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FriendsHandler) StatusWith(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := h.svc.StatusWith(ctx, actor.UserID, c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *FriendsHandler) SendRequest(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.SendRequest(ctx, actor.UserID, req.ToUserID)
	switch {
	case errors.Is(err, service.ErrSelfFriendRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot add yourself"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrAlreadyFriends):
		c.JSON(http.StatusConflict, gin.H{"error": "already friends"})
	case errors.Is(err, service.ErrRequestAlreadySent):
		c.JSON(http.StatusConflict, gin.H{"error": "request already sent"})
	case errors.Is(err, service.ErrReversePending):
		c.JSON(http.StatusConflict, gin.H{"error": "they already sent you a request; accept it instead"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, created)
	}
}

func (h *FriendsHandler) Accept(c *gin.Context) {
	h.handleRequest(c, h.svc.Accept)
}

func (h *FriendsHandler) Decline(c *gin.Context) {
	h.handleRequest(c, h.svc.Decline)
}

func (h *FriendsHandler) handleRequest(c *gin.Context, fn func(context.Context, string, int64) error) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.FriendRequestIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := fn(ctx, actor.UserID, req.RequestID)
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "friend request not found"})
	case errors.Is(err, service.ErrRequestHandled):
		c.JSON(http.StatusConflict, gin.H{"error": "request already handled"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your request"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, dto.OkResponse{Ok: true})
	}
}

func publicOrEmpty(user *models.User) models.PublicUser {
	if user == nil {
		return models.PublicUser{}
	}
	return user.Public()
}
