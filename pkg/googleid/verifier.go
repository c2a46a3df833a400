package googleid

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"sponsor_backend/internal/model"
)

// Verifier - проверяет Google ID токены с ожидаемым client ID в audience
type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify - проверяет подпись и audience токена через библиотеку Google.
// Возвращает проверенный профиль пользователя
func (v *Verifier) Verify(ctx context.Context, token string) (*model.GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google id token validation: %w", err)
	}

	return &model.GoogleProfile{
		GoogleID:  payload.Subject,
		Email:     claimString(payload, "email"),
		Name:      claimString(payload, "name"),
		AvatarURL: claimString(payload, "picture"),
	}, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)
	return value
}
