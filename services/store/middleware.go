package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Header preenchido pela camada de autenticação do ambiente (gateway).
	// A validação do token em si acontece fora deste serviço.
	principalHeader = "X-User-Name"

	requestIDHeader = "X-Request-Id"

	userContextKey = "currentUser"
)

// RequestID anexa um id único a cada requisição, propagado na resposta
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// Authenticated resolve o principal para um usuário do banco e o coloca no
// contexto da requisição. Sem principal ou sem usuário correspondente → 401.
func Authenticated(users UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(principalHeader)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user does not exist"})
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminOnly exige que o usuário já autenticado tenha o papel ADMIN
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// currentUser retorna o usuário resolvido pelo middleware Authenticated
func currentUser(c *gin.Context) *User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*User)
	if !ok {
		return nil
	}
	return user
}

// statusFromError mapeia os erros sentinela para status HTTP estáveis
func statusFromError(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrCartEmpty):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError responde o erro em JSON. Falhas internas viram uma mensagem
// genérica: detalhes do banco ficam só no log.
func abortWithError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
