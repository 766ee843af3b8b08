package repository

import (
	"errors"

	"aftas/app_error"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

// notFoundOr turns gorm.ErrRecordNotFound into an app_error NotFound and returns other errors as is.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.NotFound(format, args...)
	}
	return err
}
