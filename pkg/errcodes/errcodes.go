package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"

	// Normalization. Local only, never sent upstream.
	InvalidInput failure.ErrorCode = "InvalidInput"

	// Extraction.
	EmptyResponse      failure.ErrorCode = "EmptyResponse"
	NoData             failure.ErrorCode = "NoData"
	NoIdentifiableInfo failure.ErrorCode = "NoIdentifiableInfo"
	ParseFailure       failure.ErrorCode = "ParseFailure"

	// Upstream.
	NumberNotFound failure.ErrorCode = "NumberNotFound"
	RateLimited    failure.ErrorCode = "RateLimited"
	UpstreamError  failure.ErrorCode = "UpstreamError"
	Unreachable    failure.ErrorCode = "Unreachable"
)
