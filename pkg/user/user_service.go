package user

import (
	"context"
	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"daily-diet-api/pkg/jwt"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.RegisterUserResponse, error)
		GetUsers(ctx context.Context) ([]*domain.UserResponse, error)
		GetUserByID(ctx context.Context, userID string) (*domain.UserResponse, error)
		Authenticate(ctx context.Context, token string) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.RegisterUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	user := &entities.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		SessionID: uuid.NewString(),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(user.SessionID, user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	log.Infow("user registered", "user_id", user.ID.String())

	return &domain.RegisterUserResponse{
		User:         toUserResponse(user),
		SessionToken: token,
	}, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, u := range users {
		res := toUserResponse(u)
		result = append(result, &res)
	}
	return result, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

// Authenticate resolves a session cookie value to the owning user id. The
// token must be valid and its session must still belong to the user it names.
func (s *userService) Authenticate(ctx context.Context, token string) (string, error) {
	sessionID, userID, err := s.jwtService.GetSessionByToken(token)
	if err != nil {
		return "", err
	}

	user, err := s.userRepository.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	if user.ID.String() != userID {
		return "", domain.ErrSessionNotFound
	}

	return userID, nil
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
