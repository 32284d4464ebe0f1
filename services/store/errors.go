package main

import "errors"

// Erros sentinela do serviço. Os handlers mapeiam cada um para um status HTTP
// estável via errors.Is; qualquer outro erro é tratado como falha interna.
var (
	ErrUnauthorized    = errors.New("user is not authenticated")
	ErrForbidden       = errors.New("user is not allowed to perform this action")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCartEmpty       = errors.New("shopping cart is empty")
)
