package dto

type MasterDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

type MasterStatsDTO struct {
	MasterDTO
	Stats StatusCountsDTO `json:"stats"`
}

type MasterListResponse struct {
	Masters []MasterDTO `json:"masters"`
}

type MasterStatsResponse struct {
	Masters []MasterStatsDTO `json:"masters"`
}
