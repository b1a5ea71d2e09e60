package dto

import (
	"planiftchop/internal/report"
	"planiftchop/internal/shopping"
)

// ShoppingListFilter selects the date range to derive the list for.
// Both dates default to the current week (Monday through Sunday).
type ShoppingListFilter struct {
	Start string `form:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `form:"end"   validate:"omitempty,datetime=2006-01-02"`
}

type ShoppingCategoryResponse struct {
	Category string           `json:"category"`
	Items    []shopping.Entry `json:"items"`
}

// ShoppingListResponse is the derived purchase list. Message distinguishes the
// two empty outcomes: no unprepared meals planned vs. everything covered by
// stock; it is empty when Categories is non-empty.
type ShoppingListResponse struct {
	Start      string                     `json:"start"`
	End        string                     `json:"end"`
	Categories []ShoppingCategoryResponse `json:"categories"`
	Message    string                     `json:"message,omitempty"`
}

// EmailReportRequest triggers a report email. An empty Recipients list falls
// back to every registered family member.
type EmailReportRequest struct {
	Recipients []string        `json:"recipients" validate:"omitempty,dive,email"`
	Start      string          `json:"start"      validate:"omitempty,datetime=2006-01-02"`
	End        string          `json:"end"        validate:"omitempty,datetime=2006-01-02"`
	Include    report.Sections `json:"include"`
	// Async enqueues delivery on the worker pool instead of sending inline.
	Async bool `json:"async"`
}

type EmailReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
