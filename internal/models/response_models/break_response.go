package response_models

type BreakResponse struct {
	ID          uint    `json:"id"`
	PublicID    string  `json:"publicId"`
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	BreakType   string  `json:"breakType"`
	BestSeason  string  `json:"bestSeason"`
	Rating      int     `json:"rating"`
	Description string  `json:"description,omitempty"`
}

type BoardResponse struct {
	ID         uint   `json:"id"`
	Label      string `json:"label"`
	Dimensions string `json:"dimensions,omitempty"`
}
