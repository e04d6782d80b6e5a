package repository

import "errors"

// ErrNotFound is returned instead of gorm.ErrRecordNotFound so callers
// don't import gorm to classify lookup failures.
var ErrNotFound = errors.New("not found")
