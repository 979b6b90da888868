package get_catalog

import "github.com/m04kA/TD-WeddingService/internal/domain"

type CatalogService interface {
	Catalog() domain.Catalog
	DefaultSelections() domain.CustomSelections
	Streamlined() domain.Estimate
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
