package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils/mailing"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error)

		AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (domain.CartItemResponse, error)
		GetCart(ctx context.Context, userID string) ([]domain.CartItemResponse, error)
		UpdateCartItem(ctx context.Context, userID, itemID string, req domain.UpdateCartItemRequest) (domain.CartItemResponse, error)
		RemoveCartItem(ctx context.Context, userID, itemID string) error
		ClearCart(ctx context.Context, userID string) error

		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
		SoftDeleteUser(ctx context.Context, id string) error
		RestoreUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
		foodRepository food.FoodRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, foodRepository food.FoodRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		foodRepository: foodRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
		IsActive: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	// Welcome mail is best-effort and never blocks registration.
	go func(name, email string) {
		body := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Enjoy your first order!</p>", name)
		if err := mailing.SendMail(email, "Welcome aboard", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", email, err)
		}
	}(user.Name, user.Email)

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if user.IsDeleted {
		return domain.AuthResponse{}, domain.ErrAccountDeleted
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// AddToCart snapshots the catalog item so later price edits do not change the cart.
func (s *userService) AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (domain.CartItemResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.CartItemResponse{}, err
	}

	foodItem, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartItemResponse{}, domain.ErrFoodNotFound
		}
		return domain.CartItemResponse{}, err
	}

	size := req.Size
	if size == "" {
		size = "Regular"
	}

	item := &entities.CartItem{
		ID:         uuid.New(),
		UserID:     user.ID,
		FoodID:     foodItem.ID,
		Name:       foodItem.Name,
		Category:   foodItem.Category,
		Price:      foodItem.Price,
		Quantity:   req.Quantity,
		Size:       size,
		ImageURL:   foodItem.ImageURL,
		PrepTime:   foodItem.PrepTime,
		TotalPrice: foodItem.Price * float64(req.Quantity),
	}

	if err := s.userRepository.AddCartItem(ctx, item); err != nil {
		return domain.CartItemResponse{}, err
	}
	return toCartItemResponse(item), nil
}

func (s *userService) GetCart(ctx context.Context, userID string) ([]domain.CartItemResponse, error) {
	items, err := s.userRepository.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CartItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toCartItemResponse(item))
	}
	return response, nil
}

func (s *userService) UpdateCartItem(ctx context.Context, userID, itemID string, req domain.UpdateCartItemRequest) (domain.CartItemResponse, error) {
	item, err := s.userRepository.GetCartItemByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartItemResponse{}, domain.ErrCartItemNotFound
		}
		return domain.CartItemResponse{}, err
	}

	item.Quantity = req.Quantity
	item.TotalPrice = item.Price * float64(req.Quantity)

	if err := s.userRepository.UpdateCartItem(ctx, item); err != nil {
		return domain.CartItemResponse{}, err
	}
	return toCartItemResponse(item), nil
}

func (s *userService) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	if _, err := s.userRepository.GetCartItemByID(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	return s.userRepository.DeleteCartItem(ctx, userID, itemID)
}

func (s *userService) ClearCart(ctx context.Context, userID string) error {
	return s.userRepository.ClearCart(ctx, userID)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) SoftDeleteUser(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}
	return s.userRepository.SetUserDeleted(ctx, id, true)
}

func (s *userService) RestoreUser(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}
	return s.userRepository.SetUserDeleted(ctx, id, false)
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Address:   user.Address,
		IsActive:  user.IsActive,
		IsDeleted: user.IsDeleted,
		CreatedAt: user.CreatedAt,
	}
}

func toCartItemResponse(item *entities.CartItem) domain.CartItemResponse {
	return domain.CartItemResponse{
		ID:         item.ID.String(),
		FoodID:     item.FoodID.String(),
		Name:       item.Name,
		Category:   item.Category,
		Price:      item.Price,
		Quantity:   item.Quantity,
		Size:       item.Size,
		ImageURL:   item.ImageURL,
		PrepTime:   item.PrepTime,
		TotalPrice: item.TotalPrice,
	}
}
