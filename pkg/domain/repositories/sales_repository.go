package repositories

import "github.com/lettaearth/intel/pkg/domain/entities"

// SalesRepository provides access to monthly sales history
type SalesRepository interface {
	GetSales() ([]entities.SalesRecord, error)
	GetSalesForProduct(product entities.ProductID) ([]entities.SalesRecord, error)
	LoadSales(records []*entities.SalesRecord) error
	// Replace swaps the whole history atomically
	Replace(records []*entities.SalesRecord) error
}
