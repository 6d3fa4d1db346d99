package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/security"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Create(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error)
	List(ctx context.Context) ([]*dto.UserDTO, error)
	Get(ctx context.Context, id uint64) (*dto.UserDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.UserPatchDTO) error
	Delete(ctx context.Context, id uint64) error
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Create(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error) {
	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "EDITOR"
	}

	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, toUserDTO(u))
	}
	return list, nil
}

func (s *userServiceImpl) Get(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) Patch(ctx context.Context, id uint64, req *dto.UserPatchDTO) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	columns := map[string]interface{}{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Email != nil {
		columns["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		columns["password"] = hashed
	}
	if req.Role != nil {
		columns["role"] = *req.Role
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	if err := s.userRepo.UpdateColumns(ctx, id, columns); err != nil {
		if isDuplicateError(err) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *userServiceImpl) Delete(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.SoftDelete(ctx, id)
}

// Login never reveals whether the email or the password was wrong.
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrCredentialsInvalid
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrCredentialsInvalid
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{Token: token, User: toUserDTO(user)}, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	item := &dto.UserDTO{}
	_ = copier.Copy(item, user)
	item.CreatedAt = user.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
