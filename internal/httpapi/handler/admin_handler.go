package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mediashelf/internal/httpapi/dto"
	"mediashelf/internal/httpapi/middleware"
	"mediashelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the moderation queue and account management
// endpoints. The whole route group runs behind RequireAdmin.
type AdminHandler struct {
	mediaSvc service.MediaService
	userSvc  service.UserService
}

func NewAdminHandler(mediaSvc service.MediaService, userSvc service.UserService) *AdminHandler {
	return &AdminHandler{mediaSvc: mediaSvc, userSvc: userSvc}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/submissions", h.ListPending)
	rg.PATCH("/submissions/:media_id", h.ReviewSubmission)
	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:user_id", h.UpdateUser)
	rg.DELETE("/users/:user_id", h.DeleteUser)
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.mediaSvc.ListPending(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  list,
		"total": len(list),
	})
}

func (h *AdminHandler) ReviewSubmission(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviewed, err := h.mediaSvc.Review(ctx, actor, c.Param("media_id"), req.Action, req.RejectionNote)
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be approve or reject"})
	case errors.Is(err, service.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": "submission already reviewed"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, reviewed)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userSvc.ListAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"total": len(users),
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Disabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.userSvc.SetDisabled(ctx, c.Param("user_id"), *req.Disabled)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrCannotTouchAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin accounts cannot be disabled"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, dto.OkResponse{Ok: true})
	}
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.userSvc.Delete(ctx, c.Param("user_id"))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrCannotTouchAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin accounts cannot be deleted"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}
