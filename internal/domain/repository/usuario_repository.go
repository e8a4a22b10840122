package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para las credenciales del personal.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByEmail(email string) (*entity.Usuario, error)
	GetByID(id string) (*entity.Usuario, error)
}
