package request_models

type CreateBreakRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Region      string  `json:"region" binding:"required,min=1"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"lat" binding:"min=-90,max=90"`
	Longitude   float64 `json:"lon" binding:"min=-180,max=180"`
	BreakType   string  `json:"breakType" binding:"required"`
	BestSeason  string  `json:"bestSeason" binding:"required"`
	Rating      int     `json:"rating" binding:"min=1,max=5"`
	Description string  `json:"description"`
}
