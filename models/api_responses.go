package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every JSON endpoint answers with.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
	RequestID       string       `json:"request_id,omitempty"`
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Page          int    `json:"page" example:"1"`
	Limit         int    `json:"limit" example:"9"`
	Total         int    `json:"total" example:"42"`
	TotalPages    int    `json:"total_pages" example:"5"`
	ActiveFilters int    `json:"active_filters,omitempty" example:"2"`
	Next          string `json:"next,omitempty" example:"/api/v1/services?page=2&sortBy=price-low"`
	Prev          string `json:"prev,omitempty"`
}

// RateLimiter is the quota snapshot the rate limiter leaves on the context.
type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

func envelope(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	if rate, ok := c.Get("rateLimiter"); ok {
		resp.Rate, _ = rate.(*RateLimiter)
	}
	resp.RequestID = c.GetString("requestID")
	if c.Request != nil {
		resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := envelope(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := envelope(c, message)
	resp.Error = true
	return resp
}
