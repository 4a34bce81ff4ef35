package converter

import (
	"time"

	"github.com/immxrtalbeast/roomhub/internal/domain"
)

type RoomResponse struct {
	GUID            string    `json:"guid"`
	Name            string    `json:"name"`
	HostName        string    `json:"host_name"`
	Limit           int       `json:"limit"`
	NumParticipants int       `json:"num_participants"`
	Participants    []string  `json:"participants"`
	CreatedAt       time.Time `json:"created_at"`
}

func RoomToApi(r *domain.Room) *RoomResponse {
	participants := make([]string, len(r.Participants))
	copy(participants, r.Participants)

	return &RoomResponse{
		GUID:            r.GUID,
		Name:            r.Name,
		HostName:        r.HostName,
		Limit:           r.Limit,
		NumParticipants: r.NumParticipants,
		Participants:    participants,
		CreatedAt:       r.CreatedAt,
	}
}

func RoomsToApi(rooms []*domain.Room) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomToApi(r))
	}
	return result
}
