package response

import "github.com/vietanh2810/activities-api/internal/domain"

type LoginResponse struct {
	Token  string        `json:"token"`
	Member domain.Member `json:"member"`
}
