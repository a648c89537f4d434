package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const referralCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateReferralCode returns a random code of the given length drawn from an
// unambiguous uppercase alphanumeric charset.
func CreateReferralCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("referral code length must be positive, got %d", length)
	}
	b := make([]byte, length)
	max := big.NewInt(int64(len(referralCodeCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b[i] = referralCodeCharset[n.Int64()]
	}
	return string(b), nil
}

func StringPtr(s string) *string {
	return &s
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func BoolPtr(b bool) *bool {
	return &b
}
