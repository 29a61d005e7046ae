package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons used as the auth_rejections_total label.
const (
	ReasonMissingHeader = "missing_header"
	ReasonInvalidToken  = "invalid_token"
	ReasonNotAdmin      = "not_admin"
)

var (
	AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bazar",
		Name:      "auth_rejections_total",
		Help:      "Requests rejected by the auth or admin gate.",
	}, []string{"reason"})

	InvoicesAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bazar",
		Name:      "invoices_assigned_total",
		Help:      "Invoice numbers handed out by the invoice counter.",
	})

	OrderCreateFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bazar",
		Name:      "order_create_failures_total",
		Help:      "Order inserts that failed, including invoice allocation failures.",
	})
)

// Handler exposes the default registry for scraping.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
