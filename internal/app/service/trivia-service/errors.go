package trivia_service

import "errors"

var ErrNotFound = errors.New("trivia: resource not found")
