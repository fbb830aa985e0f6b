package v1

import (
	"github.com/raayraay69/blue-ledger/internal/devicetoken"
	"github.com/raayraay69/blue-ledger/internal/models"
)

// DTOToIncidentReport преобразует DTO создания в отчет для журнала
func DTOToIncidentReport(dto CreateIncidentRequest, deviceToken string) models.IncidentReport {
	report := models.IncidentReport{
		Latitude:      *dto.Latitude,
		Longitude:     *dto.Longitude,
		City:          dto.City,
		State:         dto.State,
		Zip:           dto.Zip,
		BadgeNumber:   dto.BadgeNumber,
		OfficerName:   dto.OfficerName,
		Department:    dto.Department,
		IncidentType:  models.IncidentType(dto.IncidentType),
		Tags:          dto.Tags,
		Confidence:    dto.Confidence,
		Description:   dto.Description,
		Outcome:       models.Outcome(dto.Outcome),
		OfficerRating: dto.OfficerRating,
		HasPhoto:      dto.HasPhoto,
		HasVideo:      dto.HasVideo,
		HasAudio:      dto.HasAudio,
		DeviceToken:   deviceToken,
	}
	if dto.IncidentAt != nil {
		report.IncidentAt = *dto.IncidentAt
	}
	return report
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// Хэш токена устройства в ответ не попадает.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	tags := model.Tags
	if tags == nil {
		tags = []string{}
	}
	return &IncidentResponse{
		ID:                 model.ID,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		City:               model.City,
		State:              model.State,
		Zip:                model.Zip,
		BadgeNumber:        model.BadgeNumber,
		OfficerName:        model.OfficerName,
		Department:         model.Department,
		IncidentType:       string(model.IncidentType),
		Tags:               tags,
		Confidence:         model.Confidence,
		Description:        model.Description,
		Outcome:            string(model.Outcome),
		OfficerRating:      model.OfficerRating,
		ConfirmCount:       model.ConfirmCount,
		DisputeCount:       model.DisputeCount,
		VerificationStatus: string(model.VerificationStatus),
		HasPhoto:           model.HasPhoto,
		HasVideo:           model.HasVideo,
		HasAudio:           model.HasAudio,
		IncidentAt:         model.IncidentAt,
		CreatedAt:          model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToSightingReport преобразует DTO создания в отчет о наблюдении
func DTOToSightingReport(dto CreateSightingRequest, deviceToken string) models.SightingReport {
	return models.SightingReport{
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		SightingType: models.SightingType(dto.SightingType),
		Direction:    dto.Direction,
		VehicleCount: dto.VehicleCount,
		Description:  dto.Description,
		DeviceToken:  deviceToken,
	}
}

func ModelToSightingResponse(model *models.Sighting) *SightingResponse {
	return &SightingResponse{
		ID:              model.ID,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		SightingType:    string(model.SightingType),
		Direction:       model.Direction,
		VehicleCount:    model.VehicleCount,
		Description:     model.Description,
		ConfirmCount:    model.ConfirmCount,
		NotThereCount:   model.NotThereCount,
		IsActive:        model.IsActive,
		ReportedAt:      model.ReportedAt,
		ExpiresAt:       model.ExpiresAt,
		LastConfirmedAt: model.LastConfirmedAt,
	}
}

func ModelsToSightingResponses(sightings []*models.Sighting) []*SightingResponse {
	responses := make([]*SightingResponse, len(sightings))
	for i, model := range sightings {
		responses[i] = ModelToSightingResponse(model)
	}
	return responses
}

func ModelToVoteResponse(result *models.VoteResult) VoteResponse {
	resp := VoteResponse{Applied: result.Applied}
	if result.Sighting != nil {
		resp.Sighting = ModelToSightingResponse(result.Sighting)
	}
	return resp
}

func ModelToOfficerResponse(model *models.Officer) *OfficerResponse {
	tagCounts := model.TagCounts
	if tagCounts == nil {
		tagCounts = map[string]int{}
	}
	return &OfficerResponse{
		BadgeNumber:        model.BadgeNumber,
		OfficerName:        model.OfficerName,
		Department:         model.Department,
		Rank:               model.Rank,
		Unit:               model.Unit,
		ReportsCount:       model.ReportsCount,
		PositiveEncounters: model.PositiveEncounters,
		NegativeEncounters: model.NegativeEncounters,
		AverageRating:      model.AverageRating,
		TagCounts:          tagCounts,
		Verified:           model.Verified,
		FirstSeenAt:        model.FirstSeenAt,
		LastSeenAt:         model.LastSeenAt,
	}
}

func ModelToDepartmentResponse(model *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:           model.ID,
		Name:         model.Name,
		City:         model.City,
		State:        model.State,
		Phone:        model.Phone,
		Email:        model.Email,
		Website:      model.Website,
		ComplaintURL: model.ComplaintURL,
		ReportsCount: model.ReportsCount,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ModelsToDepartmentResponses(departments []*models.Department) []*DepartmentResponse {
	responses := make([]*DepartmentResponse, len(departments))
	for i, model := range departments {
		responses[i] = ModelToDepartmentResponse(model)
	}
	return responses
}

// SaltToResponse преобразует соль в DTO
func SaltToResponse(salt devicetoken.Salt) SaltResponse {
	return SaltResponse{
		Epoch:     salt.Epoch,
		Salt:      salt.Value,
		ValidFrom: salt.ValidFrom,
		RotatesAt: salt.RotatesAt,
	}
}

// radiusQuery строит доменный запрос из параметров с радиусом по умолчанию в милях
func radiusQuery(p RadiusParams, defaultMiles float64) models.RadiusQuery {
	miles := p.RadiusMiles
	if miles == 0 {
		miles = defaultMiles
	}
	return models.RadiusQuery{
		Latitude:     *p.Lat,
		Longitude:    *p.Lng,
		RadiusMeters: miles * models.MetersPerMile,
		Order:        models.Order(p.Order),
		Limit:        p.Limit,
	}
}
