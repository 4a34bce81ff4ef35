package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
)

// UserResponse is the outward shape of a user record. The password hash
// never appears here.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	MobileToken string    `json:"mobile_token,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func UserToApi(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		MobileToken: u.MobileToken,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func UsersToApi(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserToApi(u))
	}
	return result
}
