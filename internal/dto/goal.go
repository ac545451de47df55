package dto

import (
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	CurrentSaved float64 `json:"currentSaved"`
	TargetDate   string  `json:"targetDate"`
	Priority     string  `json:"priority"`
}

type UpdateGoalRequest struct {
	Name         *string  `json:"name"`
	TargetAmount *float64 `json:"targetAmount"`
	CurrentSaved *float64 `json:"currentSaved"`
	TargetDate   *string  `json:"targetDate"`
	Priority     *string  `json:"priority"`
}

// GoalResponse is a goal plus its derived progress percentage.
type GoalResponse struct {
	models.Goal
	Progress float64 `json:"progress"`
}

func NewGoalResponse(g models.Goal, progress float64) GoalResponse {
	return GoalResponse{Goal: g, Progress: progress}
}
