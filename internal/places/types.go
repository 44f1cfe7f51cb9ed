package places

// Place is a single result from the Serper places API. Rating is a pointer so
// a missing rating can be told apart from a zero one.
type Place struct {
	Title   string   `json:"title"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating"`
}

type searchRequest struct {
	Query    string `json:"q"`
	Country  string `json:"gl"`
	Language string `json:"hl"`
}

type searchResponse struct {
	Places []Place `json:"places"`
}
