package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost 值守账号登录频率低，成本略高于 bcrypt 默认值
const passwordHashCost = bcrypt.DefaultCost + 2

// ErrPasswordTooLong bcrypt 对超过72字节的输入会截断，这里显式拒绝
var ErrPasswordTooLong = errors.New("密码长度不能超过72字节")

// HashPassword 使用统一的成本参数对凭据进行 bcrypt 哈希
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash 比较明文密码和已存储的哈希值
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
