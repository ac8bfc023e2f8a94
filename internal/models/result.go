package models

type EvaluateResponse struct {
	Success    bool              `json:"success"`
	RecordID   *string           `json:"record_id"`
	Evaluation *EvaluationResult `json:"evaluation"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
