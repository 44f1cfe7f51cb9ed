package directory

// Result is a doctor or clinic surfaced by discovery. IsRegistered
// distinguishes rows from the local database from transient records
// synthesized out of places-search results.
type Result struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialty      string  `json:"specialty"`
	HospitalName   string  `json:"hospital_name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Rating         float64 `json:"rating"`
	GoogleMapsLink string  `json:"google_maps_link"`
	IsRegistered   bool    `json:"is_registered"`
}
