// Package analytics resumen de compras para la pantalla de inicio: gasto del día y del
// mes en curso, obras con más gasto y total de solicitações registradas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

const dashboardTopSites = 5 // obras en el widget del dashboard

const filterDateLayout = "2006-01-02"

// DashboardUseCase genera el resumen de compras del día y del mes en curso.
// Los totales salen del motor de precios, no del totalGeral guardado.
type DashboardUseCase struct {
	orders   repository.PurchaseOrderRepository
	requests repository.PurchaseRequestRepository
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orders repository.PurchaseOrderRepository, requests repository.PurchaseRequestRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, requests: requests, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo a la API remota:
//  1. pedidos de hoy
//  2. pedidos del mes (día 1 – hoy) → gasto del mes y top de obras
//  3. solicitações
func (uc *DashboardUseCase) GetSummary(ctx context.Context, sess entity.Session) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	today := now.Format(filterDateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(filterDateLayout)

	type ordersResult struct {
		orders []*entity.PurchaseOrder
		err    error
	}
	type requestsResult struct {
		count int
		err   error
	}

	todayCh := make(chan ordersResult, 1)
	monthCh := make(chan ordersResult, 1)
	reqCh := make(chan requestsResult, 1)

	go func() {
		o, err := uc.orders.List(ctx, sess, entity.OrderFilter{From: today, To: today})
		todayCh <- ordersResult{o, err}
	}()
	go func() {
		o, err := uc.orders.List(ctx, sess, entity.OrderFilter{From: monthStart, To: today})
		monthCh <- ordersResult{o, err}
	}()
	go func() {
		r, err := uc.requests.List(ctx, sess)
		reqCh <- requestsResult{len(r), err}
	}()

	todayRes := <-todayCh
	monthRes := <-monthCh
	reqRes := <-reqCh

	if todayRes.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de hoy: %w", todayRes.err)
	}
	if monthRes.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos del mes: %w", monthRes.err)
	}
	if reqRes.err != nil {
		return nil, fmt.Errorf("dashboard: solicitações: %w", reqRes.err)
	}

	todaySpend, todayCount := spend(todayRes.orders)
	monthSpend, monthCount := spend(monthRes.orders)

	return &dto.DashboardSummaryDTO{
		TodaySpend:    pricing.FormatAmount(todaySpend),
		TodayOrders:   todayCount,
		MonthlySpend:  pricing.FormatAmount(monthSpend),
		MonthlyOrders: monthCount,
		Requests:      reqRes.count,
		TopSites:      topSites(monthRes.orders, dashboardTopSites),
		DateLabel:     monthLabel(now),
	}, nil
}

// spend suma el total general recalculado de los pedidos no cancelados.
func spend(orders []*entity.PurchaseOrder) (decimal.Decimal, int) {
	total, n := decimal.Zero, 0
	for _, o := range orders {
		if o == nil || o.Status == entity.OrderStatusCanceled {
			continue
		}
		total = total.Add(pricing.Recalculate(*o).GrandTotal)
		n++
	}
	return total, n
}

func topSites(orders []*entity.PurchaseOrder, limit int) []dto.TopSiteDTO {
	type acc struct {
		name  string
		count int
		total decimal.Decimal
	}
	bySite := map[string]*acc{}
	for _, o := range orders {
		if o == nil || o.Status == entity.OrderStatusCanceled {
			continue
		}
		a, ok := bySite[o.SiteRef]
		if !ok {
			a = &acc{name: o.SiteName}
			bySite[o.SiteRef] = a
		}
		if a.name == "" {
			a.name = o.SiteName
		}
		a.count++
		a.total = a.total.Add(pricing.Recalculate(*o).GrandTotal)
	}

	out := make([]dto.TopSiteDTO, 0, len(bySite))
	totals := make(map[string]decimal.Decimal, len(bySite))
	for id, a := range bySite {
		name := a.name
		if name == "" {
			name = "N/A"
		}
		out = append(out, dto.TopSiteDTO{SiteID: id, SiteName: name, Orders: a.count, Total: pricing.FormatAmount(a.total)})
		totals[id] = a.total
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := totals[out[i].SiteID], totals[out[j].SiteID]
		if !ti.Equal(tj) {
			return ti.GreaterThan(tj)
		}
		return out[i].SiteName < out[j].SiteName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// monthLabel etiqueta del mes como se muestra en la pantalla, ej: "Outubro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
