package users

import (
	"time"

	"parcelmarket/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify, createdAt time.Time) *UserDB {
	if userModify == nil {
		return nil
	}

	userDB := &UserDB{
		CreatedAt: createdAt,
	}
	if userModify.Email != nil {
		userDB.Email = *userModify.Email
	}
	if userModify.Role != nil {
		userDB.Role = userModify.Role.String()
	}

	return userDB
}

func ToSummaryDomainList(usersDB []UserSummaryDB) []entities.UserSummary {
	if len(usersDB) == 0 {
		return []entities.UserSummary{}
	}

	result := make([]entities.UserSummary, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = entities.UserSummary{
			Email:     userDB.Email,
			Role:      entities.UserRoleType(userDB.Role),
			CreatedAt: userDB.CreatedAt,
		}
	}
	return result
}
