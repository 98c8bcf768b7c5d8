package repository

import (
	"math/rand"
	"strings"

	"donation-service/src/internal/entity"
)

const (
	codePrefix   = "RWRD-"
	codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	codeAttempts = 16
)

// NewRewardCode returns RWRD- followed by six upper-cased base36 characters.
func NewRewardCode() string {
	var b strings.Builder
	b.WriteString(codePrefix)
	for i := 0; i < 6; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return strings.ToUpper(b.String())
}

// uniqueCode keeps drawing codes until taken reports false.
func uniqueCode(taken func(code string) (bool, error)) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := NewRewardCode()
		exists, err := taken(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

func copyReward(r entity.Reward) entity.Reward {
	if r.AvailableQuantity != nil {
		q := *r.AvailableQuantity
		r.AvailableQuantity = &q
	}
	return r
}

func copyUserReward(ur entity.UserReward) entity.UserReward {
	ur.Reward = copyReward(ur.Reward)
	return ur
}

func copyPoints(p entity.UserPoints) entity.UserPoints {
	p.History = append([]entity.PointTransaction(nil), p.History...)
	return p
}
