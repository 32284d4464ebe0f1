package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfileUseCaseInterface define a interface para o use case de perfis
type ProfileUseCaseInterface interface {
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int, profile *Profile) error
}

// ProfileHandler contém os handlers HTTP de perfis
type ProfileHandler struct {
	useCase ProfileUseCaseInterface
}

// NewProfileHandler cria uma nova instância de ProfileHandler
func NewProfileHandler(useCase ProfileUseCaseInterface) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// GetProfile retorna o perfil do usuário autenticado
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := currentUser(c)

	profile, err := h.useCase.GetProfile(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile atualiza o perfil do usuário autenticado
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.UpdateProfile(c.Request.Context(), user.UserID, &profile); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
