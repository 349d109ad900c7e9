package catalog

import "github.com/google/uuid"

// foldRows collapses the flat join result into one entity per product id.
//
// The first row seen for a product establishes all scalar columns (price,
// quantity, reorder level, warehouse); later rows for the same product only
// contribute their photo. Photos keep join row order, and a per-product seen
// set drops the copies a price or inventory fan-out would otherwise inject.
// Output order is first-seen order, which the queries arrange to be
// created_at descending.
func foldRows(rows []productRow) []*Product {
	index := make(map[uuid.UUID]*Product, len(rows))
	seen := make(map[uuid.UUID]map[string]bool, len(rows))
	var ordered []*Product

	for _, row := range rows {
		p, ok := index[row.ID]
		if !ok {
			p = &Product{
				ID:            row.ID,
				ProductName:   row.ProductName,
				TypeID:        row.TypeID,
				ColorID:       row.ColorID,
				CategoryID:    row.CategoryID,
				Size:          row.Size,
				MONumber:      row.MONumber,
				MicrowaveSafe: row.MicrowaveSafe,
				Description:   row.Description,
				IsActive:      row.IsActive,
				CreatedAt:     row.CreatedAt,
				UpdatedAt:     row.UpdatedAt,
				Price:         row.Price,
				Photos:        []string{},
				Quantity:      int(row.Quantity.Int64),
				ReorderLevel:  int(row.ReorderLevel.Int64),
				WarehouseID:   row.WarehouseID,
				WarehouseName: row.WarehouseName.String,
			}
			index[row.ID] = p
			seen[row.ID] = map[string]bool{}
			ordered = append(ordered, p)
		}
		if row.Photo.Valid && !seen[row.ID][row.Photo.String] {
			seen[row.ID][row.Photo.String] = true
			p.Photos = append(p.Photos, row.Photo.String)
		}
	}
	return ordered
}
