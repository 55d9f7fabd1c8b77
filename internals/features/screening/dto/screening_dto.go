package dto

import (
	service "github.com/Osland07/tensitrack/internals/features/screening/service"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// AnswerRequest — Answer pointer supaya "false" tetap terbaca terisi
// dan jawaban non-boolean tertolak saat decode.
type AnswerRequest struct {
	ID     uint  `json:"id" validate:"required"`
	Answer *bool `json:"answer" validate:"required"`
}

type SubmitScreeningRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
	Bmi     float64         `json:"bmi" validate:"required,gt=0"`
}

func (r *SubmitScreeningRequest) ToInput() service.SubmitScreeningInput {
	answers := make([]service.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, service.AnswerInput{
			FactorID: a.ID,
			Answer:   a.Answer != nil && *a.Answer,
		})
	}
	return service.SubmitScreeningInput{
		Answers: answers,
		Bmi:     r.Bmi,
	}
}

type SaveBmiRequest struct {
	Height float64 `json:"height" validate:"required,gte=1"`
	Weight float64 `json:"weight" validate:"required,gte=1"`
	Bmi    float64 `json:"bmi" validate:"required,gte=1"`
}

// CreateRiskFactorRequest — manajemen katalog faktor risiko (admin).
type CreateRiskFactorRequest struct {
	Code       string  `json:"code" validate:"required,max=10"`
	Name       string  `json:"name" validate:"required"`
	Score      int     `json:"score" validate:"required,gte=0"`
	Suggestion *string `json:"suggestion,omitempty"`
	Order      int     `json:"order" validate:"gte=0"`
}

type UpdateRiskFactorRequest struct {
	Code       *string `json:"code,omitempty" validate:"omitempty,max=10"`
	Name       *string `json:"name,omitempty"`
	Score      *int    `json:"score,omitempty" validate:"omitempty,gte=0"`
	Suggestion *string `json:"suggestion,omitempty"`
	Order      *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
}

// CreateRiskLevelRequest — manajemen katalog tingkat risiko (admin).
type CreateRiskLevelRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description string  `json:"description" validate:"required"`
	Suggestion  *string `json:"suggestion,omitempty"`
}

type UpdateRiskLevelRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty"`
	Suggestion  *string `json:"suggestion,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// QuestionResponse — butir kuisioner untuk klien, urut kolom "order".
type QuestionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
