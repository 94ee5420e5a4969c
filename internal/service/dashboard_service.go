package service

import (
	"time"

	"go-catalog-admin/internal/repository"
)

type DashboardService interface {
	GetCatalogActivity(days int) ([]repository.ActivityData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetCatalogActivity(days int) ([]repository.ActivityData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	data, err := s.repo.GetCatalogActivity(startDate, endDate)
	if err != nil {
		return nil, storeErr("catalog activity", err)
	}
	return data, nil
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats()
	if err != nil {
		return nil, storeErr("dashboard stats", err)
	}
	return stats, nil
}
