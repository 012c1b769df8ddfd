// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter session token utilities.

# Voter Tokens

Tokens use HMAC-SHA256 over the voter id to create deterministic,
verifiable session tokens:

	token := auth.GenerateVoterToken(voterID, salt)
	err := auth.ValidateVoterToken(voterID, token, salt)

The token is URL-safe base64 encoded without padding. Since it's
deterministic, the same voter id and salt always produce the same token.
This allows the ballot-submit endpoint to validate the token from the
login step without storing it in the database.
*/
package auth
