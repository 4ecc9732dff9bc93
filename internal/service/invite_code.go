package service

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	inviteCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	inviteCodeLength  = 8
)

// InviteCodeGenerator возвращает новый случайный код приглашения
type InviteCodeGenerator func() (string, error)

// GenerateInviteCode генерирует код из inviteCodeLength символов без похожих друг на друга букв и цифр
func GenerateInviteCode() (string, error) {
	var sb strings.Builder
	sb.Grow(inviteCodeLength)

	max := big.NewInt(int64(len(inviteCodeCharset)))
	for i := 0; i < inviteCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(inviteCodeCharset[n.Int64()])
	}

	return sb.String(), nil
}
