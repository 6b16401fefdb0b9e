package domain

import "time"

// Visitor es una sesion anonima; no hay cuentas de usuario.
type Visitor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
