package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/repository/model"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.User, 0, len(users))
	for i := range users {
		result = append(result, toDomainUser(&users[i]))
	}

	return result, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	updateData := map[string]any{
		"password_hash": userModel.PasswordHash,
		"updated_at":    userModel.UpdatedAt,
	}

	if userModel.MobileToken == nil {
		updateData["mobile_token"] = gorm.Expr("NULL")
	} else {
		updateData["mobile_token"] = userModel.MobileToken
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userModel.ID).Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

type PostgresRoomRepository struct {
	db *gorm.DB
}

func NewPostgresRoomRepository(db *gorm.DB) *PostgresRoomRepository {
	return &PostgresRoomRepository{db: db}
}

func (r *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	return r.db.WithContext(ctx).Create(roomModel).Error
}

func (r *PostgresRoomRepository) GetByGUID(ctx context.Context, guid string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var room model.Room
	err := r.db.WithContext(ctx).Preload("Participants").First(&room, "guid = ?", guid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return toDomainRoom(&room), nil
}

func (r *PostgresRoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rooms []model.Room
	if err := r.db.WithContext(ctx).Preload("Participants").Order("created_at").Find(&rooms).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}

	return result, nil
}

func (r *PostgresRoomRepository) ListByParticipant(ctx context.Context, username string) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var guids []string
	err := r.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("username = ?", username).
		Pluck("room_guid", &guids).Error
	if err != nil {
		return nil, err
	}
	if len(guids) == 0 {
		return []*domain.Room{}, nil
	}

	var rooms []model.Room
	err = r.db.WithContext(ctx).
		Preload("Participants").
		Where("guid IN ?", guids).
		Order("created_at").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}

	return result, nil
}

func (r *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":              roomModel.Name,
			"host_name":         roomModel.HostName,
			"participant_limit": roomModel.Limit,
		}

		res := tx.Model(&model.Room{}).Where("guid = ?", roomModel.GUID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}

		if err := tx.Where("room_guid = ?", roomModel.GUID).Delete(&model.Participant{}).Error; err != nil {
			return err
		}

		if len(roomModel.Participants) > 0 {
			if err := tx.Create(&roomModel.Participants).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PostgresRoomRepository) Delete(ctx context.Context, guid string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Room{}, "guid = ?", guid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func toModelRoom(room *domain.Room) *model.Room {
	participants := make([]model.Participant, 0, len(room.Participants))
	for i, username := range room.Participants {
		participants = append(participants, model.Participant{
			RoomGUID: room.GUID,
			Username: username,
			Position: i,
		})
	}

	return &model.Room{
		GUID:         room.GUID,
		Name:         room.Name,
		HostName:     room.HostName,
		Limit:        room.Limit,
		CreatedAt:    room.CreatedAt.UTC(),
		Participants: participants,
	}
}

func toDomainRoom(room *model.Room) *domain.Room {
	rows := make([]model.Participant, len(room.Participants))
	copy(rows, room.Participants)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	participants := make([]string, 0, len(rows))
	for _, p := range rows {
		participants = append(participants, p.Username)
	}

	return &domain.Room{
		GUID:            room.GUID,
		Name:            room.Name,
		HostName:        room.HostName,
		Limit:           room.Limit,
		NumParticipants: len(participants),
		Participants:    participants,
		CreatedAt:       room.CreatedAt.UTC(),
	}
}

func toModelUser(user *domain.User) *model.User {
	var mobileToken *string
	if user.MobileToken != "" {
		t := user.MobileToken
		mobileToken = &t
	}
	return &model.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		MobileToken:  mobileToken,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
}

func toDomainUser(user *model.User) *domain.User {
	mobileToken := ""
	if user.MobileToken != nil {
		mobileToken = *user.MobileToken
	}

	return &domain.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		MobileToken:  mobileToken,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
}
