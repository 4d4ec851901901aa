package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// The OAuth callback and webhook deliveries use two different HMAC schemes:
// hex over a sorted query string versus base64 over the raw body. They are
// not interchangeable and are kept as separate routines on purpose.

// VerifyCallbackHMAC recomputes HMAC-SHA256 over the sorted, &-joined
// key=value query string — excluding the hmac parameter itself — and
// compares the hex digest against the supplied hmac parameter.
func VerifyCallbackHMAC(query url.Values, secret string) bool {
	received := query.Get("hmac")
	if received == "" {
		return false
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "hmac" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+query.Get(k))
	}
	message := strings.Join(pairs, "&")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(received))
}

// VerifyWebhookHMAC recomputes HMAC-SHA256 over the raw request body and
// compares the base64 digest against the received header value.
func VerifyWebhookHMAC(body []byte, receivedB64, secret string) bool {
	if receivedB64 == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(receivedB64))
}
