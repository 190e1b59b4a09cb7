package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/tenant"
	"github.com/amit-00/shop-kit/pkg/logger"
	"github.com/amit-00/shop-kit/prometheus"
)

// TenantMiddleware resolves the tenant for each request and makes it
// available to downstream handlers. A pre-set X-Tenant-ID header (from
// an upstream edge layer) is authoritative; otherwise the tenant is
// derived from the request host. The resolved id is written back to the
// request and response headers so re-derivation anywhere downstream is
// idempotent.
func TenantMiddleware(defaultTenant string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			tenantID := c.Request().Header.Get(tenant.HeaderTenantID)
			if tenantID == "" {
				tenantID = tenant.ResolveWithDefault(c.Request().Host, defaultTenant)
			}

			c.Request().Header.Set(tenant.HeaderTenantID, tenantID)
			c.Response().Header().Set(tenant.HeaderTenantID, tenantID)
			c.Set("tenant_id", tenantID)

			prometheus.RecordTenantResolution(tenantID, tenantID == defaultTenant)
			log.Debug("Tenant resolved",
				zap.String("tenant_id", tenantID),
				zap.String("host", c.Request().Host))

			return next(c)
		}
	}
}

// TenantFromContext retrieves the tenant ID from the context.
// Returns "", false if no tenant was resolved.
func TenantFromContext(c echo.Context) (string, bool) {
	tenantID, ok := c.Get("tenant_id").(string)
	return tenantID, ok && tenantID != ""
}
