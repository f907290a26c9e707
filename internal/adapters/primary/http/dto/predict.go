package dto

import "mental-health-predictor/internal/core/domain"

// ============================================================================
// Prediction DTOs
// ============================================================================

type PredictRequest struct {
	Text string `json:"text"`
}

type PredictResponse struct {
	Label string `json:"label"`
	Model string `json:"model"`
}

type LabelsResponse struct {
	Labels []string `json:"labels"`
}

type ModelInfoResponse struct {
	Name           string   `json:"name"`
	ClassifierKind string   `json:"classifier_kind"`
	VectorizerKind string   `json:"vectorizer_kind"`
	Features       int      `json:"features"`
	Labels         []string `json:"labels"`
}

func ToPredictResponse(p domain.Prediction) PredictResponse {
	return PredictResponse{
		Label: string(p.Label),
		Model: p.Model,
	}
}

func ToModelInfoResponse(info domain.ModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		Name:           info.Name,
		ClassifierKind: info.ClassifierKind,
		VectorizerKind: info.VectorizerKind,
		Features:       info.Features,
		Labels:         info.Labels.Strings(),
	}
}
