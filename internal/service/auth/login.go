package auth

import (
	"context"
	"fmt"

	"sponsor_backend/internal/model"
	"sponsor_backend/pkg/token"
)

// Login - обменивает Google ID токен на сессионный токен.
// Создает спонсора при первом входе, при повторном обновляет его данные
func (s *serv) Login(ctx context.Context, googleToken string) (*model.AuthData, error) {
	if len(googleToken) == 0 {
		return nil, fmt.Errorf("%w: google token is required", model.ErrInvalidInput)
	}

	// 1. Проверка токена у Google (подпись, срок, audience)
	profile, err := s.verifier.Verify(ctx, googleToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAuthenticationFailed, err)
	}

	sponsor := &model.Sponsor{
		GoogleID:  profile.GoogleID,
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
		IsAdmin:   s.isAdmin(profile.Email),
	}

	// Начало транзакции: upsert и выборка ID должны видеть одну версию строки
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 2. Вставить спонсора, при конфликте по google ID обновить имя, аватар и флаг
		err := s.sponsorRepo.UpsertByGoogleID(ctx, sponsor)
		if err != nil {
			return err
		}

		// 3. Получить внутренний ID спонсора
		sponsor.ID, err = s.sponsorRepo.GetIDByGoogleID(ctx, sponsor.GoogleID)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Создать сессионный токен
	sessionToken, err := token.GenerateSessionToken(
		sponsor,
		s.jwtConfig.SessionTokenSecretKey(),
		s.jwtConfig.SessionTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		Token:   sessionToken,
		Sponsor: sponsor,
	}, nil
}
