package meloapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// La API remota es laxa con los tipos: los montos llegan como número, como string o
// vacíos, y las referencias (fornecedor, obra, itemId) como id o como objeto poblado.
// Estos tipos absorben esa variación en el borde.

// looseDecimal número tolerante. null, "" o texto no numérico valen 0.
// Se serializa como número JSON.
type looseDecimal struct {
	d decimal.Decimal
}

func dec(d decimal.Decimal) looseDecimal { return looseDecimal{d: d} }

func (l looseDecimal) Decimal() decimal.Decimal { return l.d }

func (l *looseDecimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		l.d = decimal.Zero
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			l.d = decimal.Zero
			return nil
		}
		s = strings.TrimSpace(str)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		v = decimal.Zero
	}
	l.d = v
	return nil
}

func (l looseDecimal) MarshalJSON() ([]byte, error) {
	return []byte(l.d.String()), nil
}

// looseString acepta string o número (numeroPedido llega de las dos formas).
type looseString string

func (l *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = looseString(s)
	default:
		*l = looseString(b)
	}
	return nil
}

// looseTime fecha ISO-8601; un valor que no se puede leer queda en cero.
type looseTime struct {
	t time.Time
}

func (l *looseTime) UnmarshalJSON(b []byte) error {
	var s string
	if json.Unmarshal(b, &s) != nil || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			l.t = t
			return nil
		}
	}
	return nil
}

func (l looseTime) MarshalJSON() ([]byte, error) {
	if l.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(l.t.Format(time.RFC3339))
}

// ref referencia a otro documento: id como string u objeto poblado con _id.
// Se serializa siempre como id (o null si está vacía).
type ref struct {
	ID   string
	Name string
}

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = ref{}
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var obj struct {
		ID           string `json:"_id"`
		Name         string `json:"name"`
		Fornecedor   string `json:"fornecedor"`
		NomeFantasia string `json:"nomeFantasia"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	switch {
	case obj.Name != "":
		r.Name = obj.Name
	case obj.Fornecedor != "":
		r.Name = obj.Fornecedor
	default:
		r.Name = obj.NomeFantasia
	}
	return nil
}

func (r ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// itemRef itemId de una solicitação: id o el ítem del catálogo poblado.
type itemRef struct {
	ID          string
	Description string
	Unit        string
	UnitPrice   looseDecimal
}

func (r *itemRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = itemRef{}
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var w catalogItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = itemRef{ID: w.ID, Description: w.Discriminacao, Unit: w.Unidade, UnitPrice: w.PrecoUnitario}
	return nil
}

func (r itemRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// orderEnvelope algunas versiones de la API envuelven el pedido en {"pedido": {...}}.
type orderEnvelope struct {
	Pedido *orderWire `json:"pedido"`
	orderWire
}

func (e *orderEnvelope) UnmarshalJSON(b []byte) error {
	var probe struct {
		Pedido json.RawMessage `json:"pedido"`
	}
	if err := json.Unmarshal(b, &probe); err == nil && len(probe.Pedido) > 0 && !bytes.Equal(probe.Pedido, []byte("null")) {
		var w orderWire
		if err := json.Unmarshal(probe.Pedido, &w); err != nil {
			return err
		}
		e.Pedido = &w
		return nil
	}
	return json.Unmarshal(b, &e.orderWire)
}

func (e *orderEnvelope) order() *orderWire {
	if e.Pedido != nil {
		return e.Pedido
	}
	return &e.orderWire
}
