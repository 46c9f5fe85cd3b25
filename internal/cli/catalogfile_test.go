package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/melo-compras/internal/domain/pricing"
)

func TestReadCatalogCSV_Latin1ConPuntoYComa(t *testing.T) {
	// "discriminação;unidade;preço" en ISO-8859-1
	raw := []byte("discrimina\xe7\xe3o;unidade;pre\xe7o\n" +
		"Cimento CP-II 50kg;SC;R$ 38,90\n" +
		";;\n" +
		"Tubo PVC \xbd\";BR;1.234,50\n")

	rows, err := readCatalogCSV(bytes.NewReader(raw), EncodingLatin1)
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas sin descripción se saltean")

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Cimento CP-II 50kg", rows[0].Item.Description)
	assert.Equal(t, "SC", rows[0].Item.Unit)
	assert.Equal(t, "38.90", pricing.FormatAmount(rows[0].Item.UnitPrice))

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "Tubo PVC ½\"", rows[1].Item.Description)
	assert.Equal(t, "1234.50", pricing.FormatAmount(rows[1].Item.UnitPrice))
}

func TestReadCatalogCSV_UTF8ConComa(t *testing.T) {
	raw := "\ufeffDescrição,Unid.,Preço Unitário\nAreia média,M3,120\n"
	rows, err := readCatalogCSV(bytes.NewBufferString(raw), EncodingUTF8)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Areia média", rows[0].Item.Description)
	assert.Equal(t, "M3", rows[0].Item.Unit)
	assert.Equal(t, "120.00", pricing.FormatAmount(rows[0].Item.UnitPrice))
}

func TestReadCatalogCSV_SinColumnaDescripcion(t *testing.T) {
	_, err := readCatalogCSV(bytes.NewBufferString("codigo,preco\n1,2\n"), EncodingUTF8)
	assert.Error(t, err)
}

func TestReadCatalogCSV_EncodingDesconocido(t *testing.T) {
	_, err := readCatalogCSV(bytes.NewBufferString("a\n"), "ebcdic")
	assert.Error(t, err)
}

func TestReadCatalogFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itens.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"discriminacao", "unidade", "precoUnitario"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Brita 1", "M3", 95.5}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := readCatalogFile(path, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Brita 1", rows[0].Item.Description)
	assert.Equal(t, "95.50", pricing.FormatAmount(rows[0].Item.UnitPrice))
}

func TestStripCurrency(t *testing.T) {
	cases := map[string]string{
		"R$ 1.234,50": "1234,50",
		"38.90":       "38.90",
		" 7 ":         "7",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripCurrency(in), in)
	}
}
