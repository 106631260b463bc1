package v1

import "github.com/ravipangali7/luna-alert-engine/internal/models"

// DTOToAlertModel преобразует DTO создания в доменную модель
func DTOToAlertModel(dto CreateAlertRequest) *models.AlertEvent {
	return &models.AlertEvent{
		Source:         models.AlertSource(dto.Source),
		Name:           dto.Name,
		PrimaryPhone:   dto.PrimaryPhone,
		SecondaryPhone: dto.SecondaryPhone,
		AlertTypeID:    dto.AlertTypeID,
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		Datetime:       dto.Datetime,
		Image:          dto.Image,
		Remarks:        dto.Remarks,
		InstituteID:    dto.InstituteID,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.AlertEvent) *AlertResponse {
	return &AlertResponse{
		ID:             model.ID,
		Source:         string(model.Source),
		Name:           model.Name,
		PrimaryPhone:   model.PrimaryPhone,
		SecondaryPhone: model.SecondaryPhone,
		AlertTypeID:    model.AlertTypeID,
		AlertTypeName:  model.AlertTypeName,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Datetime:       model.Datetime,
		Image:          model.Image,
		Remarks:        model.Remarks,
		Status:         string(model.Status),
		InstituteID:    model.InstituteID,
		InstituteName:  model.InstituteName,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.AlertEvent) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
