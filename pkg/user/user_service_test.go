package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	jwtpkg "github.com/Aamirnihanms/RestuarentFoodOrder/pkg/jwt"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
	carts map[string][]*entities.CartItem
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: make(map[string]*entities.User),
		carts: make(map[string][]*entities.CartItem),
	}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepository) SetUserDeleted(ctx context.Context, id string, deleted bool) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsDeleted = deleted
	return nil
}

func (f *fakeUserRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	return f.carts[userID], nil
}

func (f *fakeUserRepository) GetCartItemByID(ctx context.Context, userID, itemID string) (*entities.CartItem, error) {
	for _, item := range f.carts[userID] {
		if item.ID.String() == itemID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) AddCartItem(ctx context.Context, item *entities.CartItem) error {
	userID := item.UserID.String()
	f.carts[userID] = append(f.carts[userID], item)
	return nil
}

func (f *fakeUserRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return nil
}

func (f *fakeUserRepository) DeleteCartItem(ctx context.Context, userID, itemID string) error {
	items := f.carts[userID]
	for i, item := range items {
		if item.ID.String() == itemID {
			f.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) ClearCart(ctx context.Context, userID string) error {
	f.carts[userID] = nil
	return nil
}

type fakeFoodRepository struct {
	food.FoodRepository
	foods map[string]*entities.Food
}

func (f *fakeFoodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	item, ok := f.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string { return "token" }
func (f *fakeJWTService) ValidateTokenUser(token string) (*jwt.Token, error)  { return nil, nil }
func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

var _ jwtpkg.JWTService = (*fakeJWTService)(nil)

func seedUser(repo *fakeUserRepository, password string) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
		IsActive: true,
	}
	repo.users[user.ID.String()] = user
	return user
}

func newService(userRepo *fakeUserRepository, foodRepo food.FoodRepository) UserService {
	if foodRepo == nil {
		foodRepo = &fakeFoodRepository{foods: map[string]*entities.Food{}}
	}
	return NewUserService(userRepo, foodRepo, &fakeJWTService{})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "secret123")
	service := newService(repo, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other",
		Email:    "asha@example.com",
		Password: "different",
	})
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("got %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "secret123")
	service := newService(repo, nil)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" {
		t.Error("no token issued")
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("wrong password: got %v, want ErrCredentialsInvalid", err)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("unknown email: got %v, want ErrCredentialsInvalid", err)
	}
}

func TestLoginDeletedAccountRejected(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	user.IsDeleted = true
	service := newService(repo, nil)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, domain.ErrAccountDeleted) {
		t.Fatalf("got %v, want ErrAccountDeleted", err)
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newService(repo, nil)
	id := user.ID.String()

	if err := service.SoftDeleteUser(context.Background(), id); err != nil {
		t.Fatalf("SoftDeleteUser returned error: %v", err)
	}
	if !repo.users[id].IsDeleted {
		t.Error("user not marked deleted")
	}

	if err := service.RestoreUser(context.Background(), id); err != nil {
		t.Fatalf("RestoreUser returned error: %v", err)
	}
	if repo.users[id].IsDeleted {
		t.Error("user still marked deleted after restore")
	}

	if err := service.SoftDeleteUser(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user: got %v, want ErrUserNotFound", err)
	}
}

func TestAddToCartSnapshotsCatalogItem(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")

	foodID := uuid.New()
	foodRepo := &fakeFoodRepository{foods: map[string]*entities.Food{
		foodID.String(): {
			ID:       foodID,
			Name:     "Masala Dosa",
			Category: "South Indian",
			Price:    90,
			PrepTime: "15 min",
		},
	}}
	service := newService(repo, foodRepo)

	res, err := service.AddToCart(context.Background(), user.ID.String(), domain.AddToCartRequest{
		FoodID:   foodID.String(),
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	if res.Name != "Masala Dosa" || res.Price != 90 {
		t.Errorf("snapshot mismatch: %+v", res)
	}
	if res.TotalPrice != 270 {
		t.Errorf("got total %.2f, want 270", res.TotalPrice)
	}
	if res.Size != "Regular" {
		t.Errorf("got size %q, want default Regular", res.Size)
	}

	// Later catalog price edits must not touch the snapshot.
	foodRepo.foods[foodID.String()].Price = 150
	cart, err := service.GetCart(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("GetCart returned error: %v", err)
	}
	if len(cart) != 1 || cart[0].Price != 90 {
		t.Errorf("cart snapshot changed with catalog: %+v", cart)
	}
}

func TestAddToCartUnknownFood(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newService(repo, nil)

	_, err := service.AddToCart(context.Background(), user.ID.String(), domain.AddToCartRequest{
		FoodID:   uuid.NewString(),
		Quantity: 1,
	})
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Fatalf("got %v, want ErrFoodNotFound", err)
	}
}

func TestRemoveCartItem(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newService(repo, nil)
	userID := user.ID.String()

	item := &entities.CartItem{ID: uuid.New(), UserID: user.ID, Name: "Fries", Price: 40, Quantity: 1}
	repo.carts[userID] = []*entities.CartItem{item}

	if err := service.RemoveCartItem(context.Background(), userID, item.ID.String()); err != nil {
		t.Fatalf("RemoveCartItem returned error: %v", err)
	}
	if len(repo.carts[userID]) != 0 {
		t.Error("cart item not removed")
	}

	err := service.RemoveCartItem(context.Background(), userID, uuid.NewString())
	if !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Errorf("got %v, want ErrCartItemNotFound", err)
	}
}
