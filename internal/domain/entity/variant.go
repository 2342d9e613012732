package entity

import "fmt"

// VariantKey identifica una variante de stock: la combinación producto + tonalidad +
// calibre + lote. Es la identidad más fina del inventario; comparable, usable como
// clave de mapa en los índices de oferta del planificador de separación.
type VariantKey struct {
	ProductID string
	Tonality  string
	Gauge     string
	Lot       string
}

// SameArticle reporta si ambas claves comparten producto, tonalidad y calibre
// (mismo artículo, posiblemente otro lote).
func (k VariantKey) SameArticle(o VariantKey) bool {
	return k.ProductID == o.ProductID && k.Tonality == o.Tonality && k.Gauge == o.Gauge
}

// SameGauge reporta si ambas claves comparten producto y calibre (el lote y la
// tonalidad pueden diferir).
func (k VariantKey) SameGauge(o VariantKey) bool {
	return k.ProductID == o.ProductID && k.Gauge == o.Gauge
}

// String representación legible para mensajes de error.
func (k VariantKey) String() string {
	return fmt.Sprintf("producto=%s tonalidad=%s calibre=%s lote=%s", k.ProductID, k.Tonality, k.Gauge, k.Lot)
}
