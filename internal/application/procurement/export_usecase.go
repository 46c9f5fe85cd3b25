package procurement

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

const notAvailable = "N/A"

// ExportUseCase PDF de un pedido y planilla del listado.
type ExportUseCase struct {
	orders    repository.PurchaseOrderRepository
	suppliers repository.SupplierRepository
	sites     repository.SiteRepository
	pdf       OrderPDFGenerator
	sheet     OrdersSheetWriter
	company   entity.CompanyProfile
	log       *logger.Logger
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	orders repository.PurchaseOrderRepository,
	suppliers repository.SupplierRepository,
	sites repository.SiteRepository,
	pdf OrderPDFGenerator,
	sheet OrdersSheetWriter,
	company entity.CompanyProfile,
	log *logger.Logger,
) *ExportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExportUseCase{
		orders: orders, suppliers: suppliers, sites: sites,
		pdf: pdf, sheet: sheet, company: company, log: log.Named("export"),
	}
}

// OrderPDF PDF de un pedido guardado. Devuelve bytes y nombre de archivo.
func (uc *ExportUseCase) OrderPDF(ctx context.Context, sess entity.Session, id string) ([]byte, string, error) {
	o, err := uc.orders.GetByID(ctx, sess, id)
	if err != nil {
		return nil, "", err
	}
	return uc.render(ctx, sess, pricing.Recalculate(*o))
}

// DraftPDF PDF de un borrador que todavía no se guardó.
func (uc *ExportUseCase) DraftPDF(ctx context.Context, sess entity.Session, in dto.OrderDTO) ([]byte, string, error) {
	return uc.render(ctx, sess, OrderFromDTO(in))
}

func (uc *ExportUseCase) render(ctx context.Context, sess entity.Session, o entity.PurchaseOrder) ([]byte, string, error) {
	names := uc.loadNames(ctx, sess, o.SupplierName == "" && o.SupplierRef != "", o.SiteName == "" && o.SiteRef != "")
	doc := uc.document(o, names)
	out, err := uc.pdf.GenerateOrderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("exportar pedido: %w", err)
	}
	return out, doc.FileName(), nil
}

// OrdersSpreadsheet planilla xlsx con los pedidos del filtro.
func (uc *ExportUseCase) OrdersSpreadsheet(ctx context.Context, sess entity.Session, f dto.OrderFilterRequest) ([]byte, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	orders, err := uc.orders.List(ctx, sess, filterFromDTO(f))
	if err != nil {
		return nil, err
	}
	names := uc.loadNames(ctx, sess, true, true)
	rows := make([]OrderDocument, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, uc.document(pricing.Recalculate(*o), names))
	}
	var buf bytes.Buffer
	if err := uc.sheet.WriteOrders(ctx, &buf, rows); err != nil {
		return nil, fmt.Errorf("exportar planilla: %w", err)
	}
	return buf.Bytes(), nil
}

type nameIndex struct {
	suppliers map[string]string
	sites     map[string]string
}

// loadNames arma los índices id → nombre. Una falla se registra y deja el índice vacío:
// el documento sale igual con "N/A".
func (uc *ExportUseCase) loadNames(ctx context.Context, sess entity.Session, suppliers, sites bool) nameIndex {
	idx := nameIndex{suppliers: map[string]string{}, sites: map[string]string{}}
	if suppliers {
		list, err := uc.suppliers.List(ctx, sess)
		if err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cargar fornecedores")
		}
		for _, s := range list {
			idx.suppliers[s.ID] = s.Name
		}
	}
	if sites {
		list, err := uc.sites.List(ctx, sess)
		if err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cargar obras")
		}
		for _, s := range list {
			idx.sites[s.ID] = s.Name
		}
	}
	return idx
}

func (uc *ExportUseCase) document(o entity.PurchaseOrder, names nameIndex) OrderDocument {
	return OrderDocument{
		Company:      uc.company,
		Order:        o,
		SupplierName: resolveName(o.SupplierName, o.SupplierRef, names.suppliers),
		SiteName:     resolveName(o.SiteName, o.SiteRef, names.sites),
	}
}

func resolveName(known, id string, idx map[string]string) string {
	if known != "" {
		return known
	}
	if n, ok := idx[id]; ok && n != "" {
		return n
	}
	return notAvailable
}
