// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides request signing and ID generation utilities.

# Request Signatures

Deliveries from the chat platform (commands and clicks) may be signed with a
shared secret using HMAC-SHA256:

	sig := auth.Sign(body, secret)
	err := auth.Verify(body, sig, secret)

The signature is URL-safe base64 encoded without padding and travels in the
X-Signature header. Verify uses a constant-time comparison and returns
ErrMissingSignature or ErrInvalidSignature on failure.

# ID Generation

Random hex IDs for chat board records:

	id, err := auth.GenerateID(16)  // 32 hex characters

Poll sessions use UUIDs instead; see package session.
*/
package auth
