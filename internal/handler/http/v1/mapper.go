package v1

import "github.com/shenikar/emergency_dispatch_system/internal/models"

// FormToHelpRequestModel преобразует форму подачи заявки в доменную модель
func FormToHelpRequestModel(form CreateHelpRequestForm) *models.HelpRequest {
	return &models.HelpRequest{
		Longitude:     form.Longitude,
		Latitude:      form.Latitude,
		EmergencyType: form.EmergencyType,
		VictimCount:   form.VictimCount,
		MedicalInfo:   form.MedicalInfo,
		ContactNumber: form.ContactNumber,
	}
}

// ModelToHelpRequestResponse преобразует доменную модель в DTO для ответа,
// дополняя её производными полями таблицы статусов
func ModelToHelpRequestResponse(model *models.HelpRequest) *HelpRequestResponse {
	resp := &HelpRequestResponse{
		ID:            model.ID,
		Longitude:     model.Longitude,
		Latitude:      model.Latitude,
		EmergencyType: model.EmergencyType,
		VictimCount:   model.VictimCount,
		MedicalInfo:   model.MedicalInfo,
		ContactNumber: model.ContactNumber,
		Image:         model.Image,
		Status:        string(model.Status),
		Variant:       model.Status.Variant(),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if next, action, ok := model.Status.Next(); ok {
		resp.NextStatus = string(next)
		resp.NextAction = action
	}
	return resp
}

// ModelsToHelpRequestResponses преобразует слайс моделей в слайс DTO
func ModelsToHelpRequestResponses(models []*models.HelpRequest) []*HelpRequestResponse {
	responses := make([]*HelpRequestResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHelpRequestResponse(model)
	}
	return responses
}
