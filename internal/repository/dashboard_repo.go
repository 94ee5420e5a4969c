package repository

import (
	"sort"
	"time"

	"go-catalog-admin/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetCatalogActivity(startDate, endDate time.Time) ([]ActivityData, error)
}

// ActivityData is one day of catalog writes, for charts.
type ActivityData struct {
	Date         string `json:"date"`
	Products     int    `json:"products"`
	Combinations int    `json:"combinations"`
}

// DashboardStats is the catalog overview.
type DashboardStats struct {
	TotalProducts        int64 `json:"total_products"`
	ActiveProducts       int64 `json:"active_products"`
	OutOfStockCount      int64 `json:"out_of_stock_count"`
	TotalCombinations    int64 `json:"total_combinations"`
	TotalCategories      int64 `json:"total_categories"`
	UnweightedCategories int64 `json:"unweighted_categories"`
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	queries := []*gorm.DB{
		r.db.Model(&model.Product{}).Count(&stats.TotalProducts),
		r.db.Model(&model.Product{}).Where("active = ?", true).Count(&stats.ActiveProducts),
		r.db.Model(&model.Product{}).Where("quantity <= ?", 0).Count(&stats.OutOfStockCount),
		r.db.Model(&model.ProductCombination{}).Count(&stats.TotalCombinations),
		r.db.Model(&model.Category{}).Count(&stats.TotalCategories),
		// Categories that never saved a weight allocation
		r.db.Model(&model.Category{}).
			Where("id NOT IN (?)", r.db.Model(&model.CategoryFeatureWeight{}).Select("category_id")).
			Count(&stats.UnweightedCategories),
	}
	for _, q := range queries {
		if q.Error != nil {
			return nil, q.Error
		}
	}
	return &stats, nil
}

func (r *dashboardRepo) GetCatalogActivity(startDate, endDate time.Time) ([]ActivityData, error) {
	byDate := map[string]*ActivityData{}
	var order []string

	count := func(m interface{}, set func(*ActivityData, int)) error {
		rows, err := r.db.Model(m).
			Select("DATE(created_at) as date, COUNT(*) as total").
			Where("created_at BETWEEN ? AND ?", startDate, endDate).
			Group("DATE(created_at)").
			Order("date ASC").
			Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				date  string
				total int
			)
			if err := rows.Scan(&date, &total); err != nil {
				return err
			}
			if len(date) > 10 {
				date = date[:10]
			}
			if _, ok := byDate[date]; !ok {
				byDate[date] = &ActivityData{Date: date}
				order = append(order, date)
			}
			set(byDate[date], total)
		}
		return rows.Err()
	}

	if err := count(&model.Product{}, func(d *ActivityData, n int) { d.Products = n }); err != nil {
		return nil, err
	}
	if err := count(&model.ProductCombination{}, func(d *ActivityData, n int) { d.Combinations = n }); err != nil {
		return nil, err
	}

	sort.Strings(order)
	results := make([]ActivityData, 0, len(order))
	for _, date := range order {
		results = append(results, *byDate[date])
	}
	return results, nil
}
