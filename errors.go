package vio

import "errors"

var (
	ErrHandleNotFound   = errors.New("handle not found")
	ErrAddressesOverlap = errors.New("addresses overlap")
	ErrAddressInvalid   = errors.New("address invalid")
	ErrSizeInvalid      = errors.New("size invalid")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPluginNotFound   = errors.New("plugin not found")
	ErrURIInvalid       = errors.New("uri invalid")
)
