package filters

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // template filter, not used for security
	"crypto/sha1" //nolint:gosec // template filter, not used for security
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// MD5 returns the lowercase hex MD5 digest of s.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the lowercase hex SHA-1 digest of s.
func SHA1(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the lowercase hex SHA-256 digest of s.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HMACSHA1 returns the hex HMAC-SHA1 of s keyed with secret.
func HMACSHA1(s, secret string) string {
	return hexMAC(sha1.New, s, secret)
}

// HMACSHA256 returns the hex HMAC-SHA256 of s keyed with secret.
func HMACSHA256(s, secret string) string {
	return hexMAC(sha256.New, s, secret)
}

func hexMAC(h func() hash.Hash, s, secret string) string {
	mac := hmac.New(h, []byte(secret))
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))
}
