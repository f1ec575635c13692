package statistics

import "github.com/shopspring/decimal"

// Totals sumas de un bucket tal como las devuelve el almacén.
type Totals struct {
	Quantity    int64
	StorageCost decimal.Decimal
}

// Bucket un punto de la serie ya alineado con la secuencia canónica.
type Bucket struct {
	Key              string
	Label            string
	TotalQuantity    int64
	TotalStorageCost decimal.Decimal
}

// Assemble produce una serie de largo y orden fijos: uno por entrada de seq.
// Los buckets sin datos salen en cero; claves de totals fuera de seq se ignoran.
func Assemble(seq []Label, totals map[string]Totals) []Bucket {
	out := make([]Bucket, 0, len(seq))
	for _, l := range seq {
		b := Bucket{Key: l.Key, Label: l.Label, TotalStorageCost: decimal.Zero}
		if t, ok := totals[l.Key]; ok {
			b.TotalQuantity = t.Quantity
			b.TotalStorageCost = t.StorageCost
		}
		out = append(out, b)
	}
	return out
}
