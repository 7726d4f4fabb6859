// Package client talks to the PlantVision gRPC API and owns the local
// SQLite cache file.
//
// GRPCClient keeps the access/refresh token pair of the signed-in user.
// Every outgoing call carries the access token in the "access_token"
// metadata header; when the server answers Unauthenticated with
// "token expired", the pair is refreshed once and the call is retried.
//
// Transport errors are folded into a few sentinels:
//
//	Unauthenticated           -> ErrUnauthorized
//	PermissionDenied          -> ErrForbidden
//	InvalidArgument           -> ErrInvalidInput
//	NotFound                  -> common.ErrorNotFound
//	Unavailable, Deadline...  -> ErrUnavailable
//
// ErrUnavailable is the only one a caller may reasonably retry.
package client
