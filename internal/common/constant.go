package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultSessionHistoryLimit bounds the "recent sessions" query issued
// after clock-out and by the history command.
const DefaultSessionHistoryLimit = 10
