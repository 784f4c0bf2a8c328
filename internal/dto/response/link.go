package response

import (
	"time"

	"glassfinder/internal/data/entity"
)

type LinkRequestResponse struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	Type      entity.LinkType          `json:"type"`
	Config    string                   `json:"config"`
	Status    entity.LinkRequestStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
}

func NewLinkRequestResponse(request *entity.LinkRequest) *LinkRequestResponse {
	return &LinkRequestResponse{
		ID:        request.ID.String(),
		UserID:    request.UserID.String(),
		Type:      request.Type,
		Config:    request.Config,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}

func NewLinkRequestResponses(requests []*entity.LinkRequest) []*LinkRequestResponse {
	responses := make([]*LinkRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, NewLinkRequestResponse(request))
	}
	return responses
}
