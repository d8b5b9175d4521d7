package models

// ResourceRow mirrors the row shape returned by the
// get_resources_within_distance stored procedure. It is not a managed table;
// rows are produced by the database function and forwarded as-is.
type ResourceRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LocationName string  `json:"location_name"`
	Type         string  `json:"type"`
	DistanceKm   float64 `json:"distance_km"`
}
