// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidVoterToken = errors.New("invalid voter token")

// GenerateVoterToken creates an HMAC-based session token for a voter.
// This is deterministic and verifiable without storing it.
func GenerateVoterToken(voterID int64, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strconv.FormatInt(voterID, 10)))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateVoterToken checks if the provided token is valid for the voter
func ValidateVoterToken(voterID int64, token, salt string) error {
	expected := GenerateVoterToken(voterID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidVoterToken
	}
	return nil
}
