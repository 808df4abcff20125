package mturk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	signingRegion  = "us-east-1"
	signingService = "mturk-requester"
	signedHeaders  = "host;x-amz-date;x-amz-target"
)

// signer produces AWS Signature Version 4 headers for requester calls. The
// request shape is fixed (POST /, no query string), which keeps the
// canonicalization small.
type signer struct {
	accessKey string
	secretKey string
}

func newSigner(accessKey, secretKey string) *signer {
	return &signer{accessKey: accessKey, secretKey: secretKey}
}

// Sign adds X-Amz-Date and Authorization headers to req. The body must be
// the exact bytes the request will send.
func (s *signer) Sign(req *http.Request, body []byte, now time.Time) {
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")

	host := req.Host
	if host == "" {
		host = req.URL.Host
	}
	req.Header.Set("X-Amz-Date", amzDate)

	canonicalHeaders := strings.Join([]string{
		"host:" + host,
		"x-amz-date:" + amzDate,
		"x-amz-target:" + req.Header.Get("X-Amz-Target"),
	}, "\n") + "\n"

	canonicalRequest := strings.Join([]string{
		req.Method,
		req.URL.EscapedPath(),
		"", // query string
		canonicalHeaders,
		signedHeaders,
		hexSHA256(body),
	}, "\n")

	scope := strings.Join([]string{dateStamp, signingRegion, signingService, "aws4_request"}, "/")
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDate,
		scope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	key := hmacSHA256([]byte("AWS4"+s.secretKey), dateStamp)
	key = hmacSHA256(key, signingRegion)
	key = hmacSHA256(key, signingService)
	key = hmacSHA256(key, "aws4_request")
	signature := hex.EncodeToString(hmacSHA256(key, stringToSign))

	req.Header.Set("Authorization", fmt.Sprintf(
		"AWS4-HMAC-SHA256 Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		s.accessKey, scope, signedHeaders, signature))
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
