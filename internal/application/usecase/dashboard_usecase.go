package usecase

import (
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// DashboardUseCase agregados de la pantalla inicial del back-office.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumen arma el tablero: pedidos por estado, ventas del día y conteos.
func (uc *DashboardUseCase) Resumen() (*dto.DashboardResponse, error) {
	porEstado, err := uc.repo.ContarPedidosPorEstado()
	if err != nil {
		return nil, err
	}
	ventas, err := uc.repo.VentasDelDia()
	if err != nil {
		return nil, err
	}
	distritos, platos, clientes, empleados, err := uc.repo.ContarCatalogos()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		PedidosPorEstado: porEstado,
		VentasDelDia:     ventas,
		Distritos:        distritos,
		Platos:           platos,
		Clientes:         clientes,
		Empleados:        empleados,
	}, nil
}
