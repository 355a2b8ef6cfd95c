package repositories

import "github.com/lettaearth/intel/pkg/domain/entities"

// DemandRepository provides access to per-account demand
type DemandRepository interface {
	GetAccountDemands() ([]entities.AccountDemand, error)
	GetAccountDemandsForProduct(product entities.ProductID) ([]entities.AccountDemand, error)
	LoadAccountDemands(demands []*entities.AccountDemand) error
	Replace(demands []*entities.AccountDemand) error
}
