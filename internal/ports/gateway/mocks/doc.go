// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/gateway/persistence Store
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/gateway/platform Clock,IDGenerator
