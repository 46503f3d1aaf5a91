package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/utils"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetAllUsers() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
	Authenticate(email, password string) (*models.User, error)
}

// UserService 提供操作员账号相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUsers 获取所有用户列表
func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// 2 GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// 3 CreateUser 创建新用户，用户名和邮箱按约定唯一
func (s *UserService) CreateUser(user *models.User) error {
	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		return ErrUserFieldsRequired
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExist
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.DB.Create(user).Error
}

// 4 UpdateUser 更新用户信息，ID不可变，密码按需重新哈希
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if password, ok := updates["password"].(string); ok {
		if password == "" {
			delete(updates, "password")
		} else {
			hashed, err := utils.HashPassword(password)
			if err != nil {
				return nil, err
			}
			updates["password"] = hashed
		}
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 5 DeleteUser 删除用户，无删除保护：
// 已解决事件上的 resolved_by 引用保留，读取时用兜底显示名
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(user).Error
}

// 6 Authenticate 校验邮箱和密码，成功返回用户记录
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrUserFieldsRequired
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserPasswordIncorrect
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrUserPasswordIncorrect
	}

	return &user, nil
}
