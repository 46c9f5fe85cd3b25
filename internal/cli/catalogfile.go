package cli

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
)

// Encodings aceptados por itens import. Las planillas viejas salen en Latin-1/Windows-1252.
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
	EncodingCP1252 = "cp1252"
)

// catalogRow fila leída del archivo con su número de línea (1 = encabezado).
type catalogRow struct {
	Line int
	Item entity.CatalogItem
}

// columnas reconocidas en el encabezado, en minúsculas y sin acentos.
var (
	descriptionHeaders = []string{"discriminacao", "descricao", "description", "item"}
	unitHeaders        = []string{"unidade", "unid", "un", "unit"}
	priceHeaders       = []string{"precounitario", "preco", "valor", "unit_price", "price"}
)

// readCatalogFile lee .csv o .xlsx (primera hoja). En CSV el separador ; o , se detecta
// en la primera línea.
func readCatalogFile(path, encoding string) ([]catalogRow, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readCatalogXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	return readCatalogCSV(f, encoding)
}

func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
		return r, nil
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingCP1252, "windows-1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("encoding %q no soportado (utf8, latin1, cp1252)", encoding)
}

func readCatalogCSV(r io.Reader, encoding string) ([]catalogRow, error) {
	dr, err := decodeReader(r, encoding)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(dr)
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	if i := bytes.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}

	cr := csv.NewReader(br)
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	return rowsFromRecords(records)
}

func readCatalogXLSX(path string) ([]catalogRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilla sin hojas")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]catalogRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	desc, unit, price := findColumn(header, descriptionHeaders), findColumn(header, unitHeaders), findColumn(header, priceHeaders)
	if desc < 0 {
		return nil, fmt.Errorf("falta la columna de descripción (discriminacao) en el encabezado %v", header)
	}

	rows := make([]catalogRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		d := strings.TrimSpace(cell(rec, desc))
		if d == "" {
			continue
		}
		rows = append(rows, catalogRow{
			Line: i + 2,
			Item: entity.CatalogItem{
				Description: d,
				Unit:        strings.TrimSpace(cell(rec, unit)),
				UnitPrice:   pricing.ParseAmount(stripCurrency(cell(rec, price))),
			},
		})
	}
	return rows, nil
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		key := normalizeHeader(h)
		for _, n := range names {
			if key == n {
				return i
			}
		}
	}
	return -1
}

var headerReplacer = strings.NewReplacer(
	"ç", "c", "ã", "a", "á", "a", "â", "a", "é", "e", "ê", "e", "í", "i", "ó", "o", "ô", "o", "õ", "o", "ú", "u",
	" ", "", ".", "",
)

func normalizeHeader(h string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(h)))
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// stripCurrency "R$ 1.234,50" → "1234,50". Con coma decimal el punto es separador de miles.
func stripCurrency(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}
