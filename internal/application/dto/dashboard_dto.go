package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Montos formateados con dos decimales, igual que los totales del editor.
type DashboardSummaryDTO struct {
	// Día actual
	TodaySpend  string `json:"today_spend"`
	TodayOrders int    `json:"today_orders"`

	// Mes en curso (día 1 – hoy)
	MonthlySpend  string `json:"monthly_spend"`
	MonthlyOrders int    `json:"monthly_orders"`

	Requests  int          `json:"requests"` // solicitações registradas
	TopSites  []TopSiteDTO `json:"top_sites"`
	DateLabel string       `json:"date_label"` // ej: "Outubro 2026"
}

// TopSiteDTO gasto del mes en una obra.
type TopSiteDTO struct {
	SiteID   string `json:"site_id"`
	SiteName string `json:"site_name"`
	Orders   int    `json:"orders"`
	Total    string `json:"total"`
}
