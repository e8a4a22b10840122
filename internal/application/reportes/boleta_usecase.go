package reportes

import (
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// BoletaUseCase arma los datos de la boleta de un pedido y delega el PDF al
// generador. Cliente y empleado pueden faltar (pedido de barra): la boleta
// sale igual con los campos vacíos.
type BoletaUseCase struct {
	pedidos   repository.PedidoRepository
	clientes  repository.ClienteRepository
	empleados repository.EmpleadoRepository
	generator BoletaGenerator
}

// NewBoletaUseCase construye el caso de uso.
func NewBoletaUseCase(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
	generator BoletaGenerator,
) *BoletaUseCase {
	return &BoletaUseCase{pedidos: pedidos, clientes: clientes, empleados: empleados, generator: generator}
}

// Generar devuelve los bytes del PDF de la boleta del pedido.
func (uc *BoletaUseCase) Generar(codigo string) ([]byte, error) {
	pedido, err := uc.pedidos.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}

	var cliente *entity.Cliente
	if pedido.ClienteCodigo != "" {
		cliente, err = uc.clientes.GetByCodigo(pedido.ClienteCodigo)
		if err != nil {
			return nil, err
		}
	}
	var empleado *entity.Empleado
	if pedido.EmpleadoCodigo != "" {
		empleado, err = uc.empleados.GetByCodigo(pedido.EmpleadoCodigo)
		if err != nil {
			return nil, err
		}
	}

	return uc.generator.GenerarBoleta(pedido, cliente, empleado)
}
